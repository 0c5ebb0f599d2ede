// Package config loads client settings from the environment and applies
// programmatic overrides.
package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/YspCoder/pixabay/utils"
)

const (
	DefaultEndpoint = "https://pixabay.com/api/"
	DefaultTimeout  = 4 * time.Second
)

// Config holds the settings shared by the image and video clients.
type Config struct {
	APIKey   string         `env:"PIXABAY_API_KEY" validate:"required"`
	Endpoint string         `env:"PIXABAY_ENDPOINT" envDefault:"https://pixabay.com/api/" validate:"required,url"`
	Timeout  time.Duration  `env:"PIXABAY_TIMEOUT" envDefault:"4s" validate:"gt=0"`
	LogLevel utils.LogLevel `env:"PIXABAY_LOG_LEVEL" envDefault:"warn" validate:"gte=0,lte=4"`

	// HTTPClient replaces the per-call client. Its own timeout applies.
	HTTPClient *http.Client `validate:"-"`
}

// ConfigOption overrides a single setting.
type ConfigOption func(*Config)

var validate = validator.New()

// LoadConfig reads the PIXABAY_* environment variables. The result is not
// validated, since the API key is commonly supplied through SetAPIKey.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.Endpoint = normalizeEndpoint(cfg.Endpoint)
	return cfg, nil
}

// Validate checks cfg after all options have been applied.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SetAPIKey sets the API key, trimming surrounding whitespace.
func SetAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = strings.TrimSpace(key)
	}
}

// SetEndpoint sets the base URL, normalized to end with a slash.
func SetEndpoint(endpoint string) ConfigOption {
	return func(c *Config) {
		c.Endpoint = normalizeEndpoint(endpoint)
	}
}

// SetTimeout sets the per-request timeout.
func SetTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// SetLogLevel sets the logging verbosity.
func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// SetHTTPClient makes every call go through client.
func SetHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// normalizeEndpoint makes sure the endpoint ends with a slash so that the
// video path can be appended.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" || strings.HasSuffix(endpoint, "/") {
		return endpoint
	}
	return endpoint + "/"
}
