package utils

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the server configuration, populated from the environment.
type Config struct {
	Port      string `envconfig:"PORT" default:"8000"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"phi-horizon-secret-key"`
	DataDir   string `envconfig:"DATA_DIR" default:"data"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process environment config")
	}
	return cfg, nil
}
