// Package logger provides structured logging on top of zerolog.
//
// It supports JSON and console output, per-logger levels, component-scoped
// loggers, and trace correlation from OpenTelemetry span contexts.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("httpclient")
//	log.Info("request completed", logger.Fields("url", u, "status", 200))
package logger
