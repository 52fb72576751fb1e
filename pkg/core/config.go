package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ProductionURL is the Codex Exchange REST endpoint.
const ProductionURL = "https://api.codex.one"

// Config contains all configuration options for a Codex Exchange client.
type Config struct {
	// BaseURL is prepended to every endpoint path.
	BaseURL     string       `json:"base_url" validate:"required,url"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration for HTTP requests. Zero keeps the transport default.
	Timeout time.Duration     `json:"timeout" validate:"min=0"`
	Headers map[string]string `json:"headers,omitempty"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// DefaultConfig returns a Config targeting the production endpoint without credentials.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  ProductionURL,
		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks the struct tags of the config.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithKeys sets the API credentials from a public and secret key pair.
func (c *Config) WithKeys(publicKey, secretKey string) *Config {
	c.Credentials = &Credentials{PublicKey: publicKey, SecretKey: secretKey}
	return c
}

// WithBaseURL overrides the API base URL and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithLogLevel sets the log level used by the example programs.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
