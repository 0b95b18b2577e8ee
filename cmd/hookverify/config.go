package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultSecretEnv = "HOOKVERIFY_SECRET"

// fileConfig is the optional YAML configuration file.
type fileConfig struct {
	URL           string `yaml:"url"`
	LeewayMinutes *int   `yaml:"leeway_minutes"`
	SecretEnv     string `yaml:"secret_env"`
	EnvFile       string `yaml:"env_file"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSecret looks the secret up in the .env file first, then in the
// process environment.
func resolveSecret(name, envFile string, getenv func(string) string) (string, error) {
	if name == "" {
		name = defaultSecretEnv
	}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return "", fmt.Errorf("read env file: %w", err)
		}
		if v := values[name]; v != "" {
			return v, nil
		}
	}
	if v := getenv(name); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: set %s", errNoSecret, name)
}

var (
	errNoSecret       = errors.New("hookverify: secret is not set")
	errNegativeLeeway = errors.New("hookverify: leeway must not be negative")
)
