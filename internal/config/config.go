// Package config loads CLI configuration with the precedence
// defaults < config file < CANOPY_* environment < command-line flags.
// Flag overrides are applied by the command layer after Load.
package config

import "time"

// Config is the effective CLI configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig locates and authenticates against the content server.
type ServerConfig struct {
	// URL is the server API root.
	URL string `mapstructure:"url" yaml:"url"`

	// Username and Password authenticate requests (HTTP basic auth).
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`

	// Timeout bounds each request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// RequestsPerSecond enables client-side rate limiting when > 0.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
}

// MarshalYAML renders the timeout in duration syntax ("30s") instead
// of raw nanoseconds, matching what Load parses back.
func (s ServerConfig) MarshalYAML() (any, error) {
	return struct {
		URL               string  `yaml:"url"`
		Username          string  `yaml:"username,omitempty"`
		Password          string  `yaml:"password,omitempty"`
		Timeout           string  `yaml:"timeout"`
		RequestsPerSecond float64 `yaml:"requests_per_second,omitempty"`
	}{s.URL, s.Username, s.Password, s.Timeout.String(), s.RequestsPerSecond}, nil
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Defaults applied when neither file, environment, nor flags set a value.
const (
	DefaultServerURL = "https://localhost/api"
	DefaultTimeout   = 30 * time.Second
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: DefaultTimeout,
		},
	}
}
