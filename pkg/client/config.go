package client

import "time"

// Config configures a content server client.
//
// Authentication is HTTP basic auth; leave Username empty for
// anonymous access against development servers.
type Config struct {
	// BaseURL is the server API root, e.g. "https://canopy.example.com/api"
	// (required).
	BaseURL string

	// Username authenticates requests. Optional.
	Username string

	// Password pairs with Username. Required if Username is set.
	Password string

	// Timeout bounds each request, connection establishment included.
	// Zero uses DefaultTimeout.
	Timeout time.Duration

	// RequestsPerSecond enables client-side rate limiting when > 0.
	// Zero disables limiting.
	RequestsPerSecond float64

	// UserAgent overrides the User-Agent header. Zero value uses
	// DefaultUserAgent.
	UserAgent string
}

// DefaultTimeout bounds requests when Config.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the CLI to the server.
const DefaultUserAgent = "canopy-cli"

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return &ConfigError{Field: "BaseURL", Message: "server URL is required"}
	}
	if c.Username == "" && c.Password != "" {
		return &ConfigError{Field: "Username", Message: "username is required when a password is set"}
	}
	if c.RequestsPerSecond < 0 {
		return &ConfigError{Field: "RequestsPerSecond", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a client configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "client config: " + e.Field + ": " + e.Message
}
