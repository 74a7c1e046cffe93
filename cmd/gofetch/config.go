package main

import (
	"github.com/kbukum/gofetch/config"
	"github.com/kbukum/gofetch/httpclient"
	"github.com/kbukum/gofetch/observability"
	"github.com/kbukum/gofetch/version"
)

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	HTTP        httpclient.Config          `yaml:"http" mapstructure:"http"`
	BearerToken string                     `yaml:"bearer_token" mapstructure:"bearer_token"`
	Tracing     observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics     observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.Version
	}
	c.ServiceConfig.ApplyDefaults()
}

func (c *appConfig) Validate() error {
	return c.ServiceConfig.Validate()
}

// telemetry fills the tracer and meter configs from the service fields.
// An empty endpoint leaves that signal disabled.
func (c *appConfig) telemetry(otlpEndpoint string) {
	for _, endpoint := range []*string{&c.Tracing.Endpoint, &c.Metrics.Endpoint} {
		if otlpEndpoint != "" {
			*endpoint = otlpEndpoint
		}
	}
	c.Tracing.ServiceName, c.Metrics.ServiceName = c.Name, c.Name
	c.Tracing.ServiceVersion, c.Metrics.ServiceVersion = c.Version, c.Version
	c.Tracing.Environment, c.Metrics.Environment = c.Environment, c.Environment
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = 1
	}
}

func loadConfig(flags *rootFlags) (*appConfig, error) {
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if flags.configFile != "" {
		opts = append(opts, config.WithConfigFile(flags.configFile))
	}
	if flags.envFile != "" {
		opts = append(opts, config.WithEnvFile(flags.envFile))
	}

	cfg := &appConfig{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Logging.Format = flags.logFormat
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
