package httpclient

import (
	"strings"
	"time"

	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/validation"
)

const (
	defaultTimeout = 30 * time.Second
	defaultName    = "http"
)

// Config configures a Client built with New.
type Config struct {
	// Name identifies the client in logs and component summaries.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the absolute http(s) URL every path is appended to.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,http_url"`

	// Timeout bounds a whole call, including reading the body. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// MaxRedirects caps followed redirects. 0 keeps the net/http default of
	// 10; -1 disables following and returns the 3xx response as is.
	MaxRedirects int `yaml:"max_redirects" mapstructure:"max_redirects" validate:"gte=-1"`

	// MaxBodyBytes caps the bytes read from a response body. 0 means no cap.
	MaxBodyBytes int64 `yaml:"max_body_bytes" mapstructure:"max_body_bytes" validate:"gte=0"`

	// Headers are sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Parsers names the body parsers in resolution order. Empty selects the
	// default set.
	Parsers []string `yaml:"parsers" mapstructure:"parsers" validate:"dive,oneof=json json5 yaml yml html sse ndjson jsonl binary text"`

	// Interceptors names the standard interceptors to install, in order.
	// The list matches interceptor.Names.
	Interceptors []string `yaml:"interceptors" mapstructure:"interceptors" validate:"dive,oneof=sequence timestamp response-time logger request-id"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls" validate:"-"`

	// Auth configures authentication applied to every request.
	Auth *AuthConfig `yaml:"-" mapstructure:"-" validate:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	c.Parsers = normalizeNames(c.Parsers)
	c.Interceptors = normalizeNames(c.Interceptors)
}

// normalizeNames trims and lower-cases configured names so that validation
// and lookup see the same spelling.
func normalizeNames(names []string) []string {
	if len(names) == 0 {
		return names
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return out
}

// Validate checks that the configuration is valid. Failures are
// INVALID_CONFIG errors listing every offending field.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.TLS.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	if err := c.Auth.validate(); err != nil {
		return err
	}
	return nil
}
