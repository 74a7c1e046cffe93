// Package security holds the TLS settings used by the HTTP transport.
//
//	cfg := security.TLSConfig{
//	    CAFile:     "/etc/gofetch/ca.pem",
//	    CertFile:   "/etc/gofetch/client.pem",
//	    KeyFile:    "/etc/gofetch/client-key.pem",
//	    MinVersion: "1.3",
//	}
//
//	tlsConfig, err := cfg.Build()
//
// Build returns nil when nothing is configured, leaving the transport on
// Go's defaults.
package security
