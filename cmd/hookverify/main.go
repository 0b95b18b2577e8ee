// Command hookverify signs and verifies webhook deliveries from the command
// line.
//
//	hookverify sign   --url URL [--body-file FILE|-] [--timestamp SECONDS]
//	hookverify verify --url URL --header HEADER [--body-file FILE|-] [--leeway MINUTES]
//
// The secret is read from the environment variable named by --secret-env
// (default HOOKVERIFY_SECRET), optionally loaded from --env-file. Defaults for
// the URL, leeway and secret variable can come from a YAML --config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/xraph/hookverify"
	"github.com/xraph/hookverify/signature"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

type options struct {
	configPath string
	envFile    string
	secretEnv  string
	url        string
	header     string
	body       string
	bodyFile   string
	leeway     int
	leewaySet  bool
	timestamp  int64
	verbose    bool
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: hookverify <sign|verify> [flags]")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	cmd := args[0]
	if cmd != "sign" && cmd != "verify" {
		usage(stderr)
		return 2
	}

	var o options
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML config file")
	fs.StringVar(&o.envFile, "env-file", "", ".env file to read the secret from")
	fs.StringVar(&o.secretEnv, "secret-env", "", "environment variable holding the secret")
	fs.StringVarP(&o.url, "url", "u", "", "URL the webhook was delivered to")
	fs.StringVar(&o.body, "body", "", "raw request body")
	fs.StringVarP(&o.bodyFile, "body-file", "f", "", "file holding the raw request body (- for stdin)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log verification details to stderr")
	if cmd == "verify" {
		fs.StringVarP(&o.header, "header", "H", "", "signature header value")
		fs.IntVarP(&o.leeway, "leeway", "l", 0, "allowed clock skew in minutes")
	} else {
		fs.Int64VarP(&o.timestamp, "timestamp", "t", 0, "signing time in unix seconds (default now)")
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	o.leewaySet = cmd == "verify" && fs.Changed("leeway")

	var err error
	if cmd == "sign" {
		err = runSign(o, stdin, stdout, getenv)
	} else {
		err = runVerify(o, stdin, stdout, stderr, getenv)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

type resolved struct {
	url    string
	secret string
	body   string
	// leeway is nil when neither the flag nor the config file set it.
	leeway *int
}

func resolve(o options, stdin io.Reader, getenv func(string) string) (resolved, error) {
	cfg, err := loadFileConfig(o.configPath)
	if err != nil {
		return resolved{}, err
	}

	r := resolved{url: cfg.URL, leeway: cfg.LeewayMinutes}
	if o.url != "" {
		r.url = o.url
	}
	if o.leewaySet {
		r.leeway = &o.leeway
	}
	if r.leeway != nil && *r.leeway < 0 {
		return resolved{}, fmt.Errorf("%w: %d", errNegativeLeeway, *r.leeway)
	}

	secretEnv := cfg.SecretEnv
	if o.secretEnv != "" {
		secretEnv = o.secretEnv
	}
	envFile := cfg.EnvFile
	if o.envFile != "" {
		envFile = o.envFile
	}
	if r.secret, err = resolveSecret(secretEnv, envFile, getenv); err != nil {
		return resolved{}, err
	}

	if r.body, err = readBody(o, stdin); err != nil {
		return resolved{}, err
	}
	return r, nil
}

// readBody returns the body byte-for-byte; it is never re-encoded.
func readBody(o options, stdin io.Reader) (string, error) {
	switch o.bodyFile {
	case "":
		return o.body, nil
	case "-":
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read body: %w", err)
		}
		return string(raw), nil
	default:
		raw, err := os.ReadFile(o.bodyFile)
		if err != nil {
			return "", fmt.Errorf("read body: %w", err)
		}
		return string(raw), nil
	}
}

func runSign(o options, stdin io.Reader, stdout io.Writer, getenv func(string) string) error {
	r, err := resolve(o, stdin, getenv)
	if err != nil {
		return err
	}
	ts := o.timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}
	sig := signature.Sign(r.url, r.secret, r.body, ts)
	fmt.Fprintln(stdout, signature.FormatHeader(ts, sig))
	return nil
}

func runVerify(o options, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	r, err := resolve(o, stdin, getenv)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []hookverify.Option{hookverify.WithLogger(logger)}
	if r.leeway != nil {
		opts = append(opts, hookverify.WithLeeway(*r.leeway))
	}
	v, err := hookverify.New(opts...)
	if err != nil {
		return err
	}

	if _, err := v.Verify(context.Background(), hookverify.Request{
		URL:    r.url,
		Secret: r.secret,
		Header: o.header,
		Body:   r.body,
	}); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "ok")
	return nil
}
