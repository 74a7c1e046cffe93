package httpclient

import (
	"testing"
	"time"

	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/security"
	"github.com/kbukum/gofetch/validation"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.Name != "http" {
		t.Errorf("expected default name 'http', got %q", cfg.Name)
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Name: "catalog", Timeout: 10 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 10*time.Second || cfg.Name != "catalog" {
		t.Errorf("expected existing values kept, got %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{BaseURL: "https://api.example.com", Timeout: time.Second}
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{"valid", func(*Config) {}, "", false},
		{"valid with lists", func(c *Config) {
			c.Parsers = []string{"json", "yaml"}
			c.Interceptors = []string{"sequence", "response-time", "logger"}
		}, "", false},
		{"missing base url", func(c *Config) { c.BaseURL = "" }, "base_url", true},
		{"relative base url", func(c *Config) { c.BaseURL = "/api" }, "base_url", true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout", true},
		{"negative body cap", func(c *Config) { c.MaxBodyBytes = -1 }, "max_body_bytes", true},
		{"redirects below -1", func(c *Config) { c.MaxRedirects = -2 }, "max_redirects", true},
		{"unknown parser", func(c *Config) { c.Parsers = []string{"xml"} }, "", true},
		{"unknown interceptor", func(c *Config) { c.Interceptors = []string{"retry"} }, "", true},
		{"tls cert without key", func(c *Config) {
			c.TLS = &security.TLSConfig{CertFile: "cert.pem"}
		}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			appErr, ok := errors.AsAppError(err)
			if !ok || appErr.Code != errors.ErrCodeInvalidConfig {
				t.Fatalf("expected INVALID_CONFIG, got %v", err)
			}
			if tt.field == "" {
				return
			}
			fields, _ := appErr.Details["fields"].([]validation.FieldError)
			found := false
			for _, f := range fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in %v", tt.field, fields)
			}
		})
	}
}
