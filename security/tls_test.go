package security

import (
	"crypto/tls"
	"strings"
	"testing"

	"github.com/kbukum/gofetch/security/tlstest"
)

func TestTLSConfig_Build_Disabled(t *testing.T) {
	var nilCfg *TLSConfig
	for name, cfg := range map[string]*TLSConfig{"nil": nilCfg, "zero": {}} {
		t.Run(name, func(t *testing.T) {
			result, err := cfg.Build()
			if err != nil || result != nil {
				t.Fatalf("expected nil, nil; got %v, %v", result, err)
			}
		})
	}
}

func TestTLSConfig_Build_Defaults(t *testing.T) {
	result, err := (&TLSConfig{SkipVerify: true, ServerName: "example.com"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.InsecureSkipVerify || result.ServerName != "example.com" {
		t.Errorf("unexpected config %+v", result)
	}
	if result.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected TLS 1.2 floor, got %x", result.MinVersion)
	}
}

func TestTLSConfig_Build_MinVersion(t *testing.T) {
	result, err := (&TLSConfig{MinVersion: "1.3"}).Build()
	if err != nil {
		t.Fatal(err)
	}
	if result.MinVersion != tls.VersionTLS13 {
		t.Errorf("expected TLS 1.3, got %x", result.MinVersion)
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *TLSConfig
		errMsg string
	}{
		{"nil", nil, ""},
		{"pair", &TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}, ""},
		{"cert only", &TLSConfig{CertFile: "cert.pem"}, "provided together"},
		{"key only", &TLSConfig{KeyFile: "key.pem"}, "provided together"},
		{"bad version", &TLSConfig{MinVersion: "1.0"}, "min_version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestTLSConfig_Build_RunsValidate(t *testing.T) {
	if _, err := (&TLSConfig{MinVersion: "1.1"}).Build(); err == nil {
		t.Fatal("expected Build to reject an unknown version")
	}
}

func TestTLSConfig_IsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *TLSConfig
		enabled bool
	}{
		{"nil", nil, false},
		{"zero", &TLSConfig{}, false},
		{"skip_verify", &TLSConfig{SkipVerify: true}, true},
		{"ca_file", &TLSConfig{CAFile: "ca.pem"}, true},
		{"key_file", &TLSConfig{KeyFile: "key.pem"}, true},
		{"server_name", &TLSConfig{ServerName: "example.com"}, true},
		{"min_version", &TLSConfig{MinVersion: "1.3"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsEnabled(); got != tt.enabled {
				t.Errorf("IsEnabled() = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func TestTLSConfig_Build_Files(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t)
	result, err := (&TLSConfig{
		CAFile:     certs.CAFile,
		CertFile:   certs.CertFile,
		KeyFile:    certs.KeyFile,
		ServerName: "localhost",
	}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RootCAs == nil {
		t.Error("expected RootCAs to be set")
	}
	if len(result.Certificates) != 1 {
		t.Errorf("expected 1 client certificate, got %d", len(result.Certificates))
	}
}

func TestTLSConfig_Build_FileErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *TLSConfig
	}{
		{"missing ca", &TLSConfig{CAFile: "/nonexistent/ca.pem"}},
		{"invalid ca", &TLSConfig{CAFile: tlstest.WriteInvalidPEM(t, "bad-ca.pem")}},
		{"missing cert", &TLSConfig{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Build(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
