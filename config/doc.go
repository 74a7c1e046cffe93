// Package config loads service configuration with Viper.
//
// LoadConfig looks for a config.yml and a .env file in the usual places
// (cmd/<service>/, config/, the working directory), reads the YAML, loads
// the .env file into the environment and lets environment variables
// override file values. With WithEnvPrefix("GOFETCH"), GOFETCH_HTTP_BASE_URL
// sets http.base_url.
//
// # Usage
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    HTTP httpclient.Config `yaml:"http" mapstructure:"http"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("gofetch", &cfg, config.WithEnvPrefix("GOFETCH"))
//
// When the target implements Validatable, ApplyDefaults and Validate run
// after unmarshaling.
package config
