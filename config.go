package hookverify

// DefaultLeewayMinutes is the allowed clock skew when none is configured.
const DefaultLeewayMinutes = 5

// Config holds the configuration for a Verifier.
type Config struct {
	// LeewayMinutes is the maximum allowed difference, in whole minutes
	// rounded up, between the signed timestamp and the verifier's clock.
	LeewayMinutes int `json:"leeway_minutes" yaml:"leeway_minutes" mapstructure:"leeway_minutes"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LeewayMinutes: DefaultLeewayMinutes,
	}
}
