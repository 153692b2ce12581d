package config

import (
	"fmt"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, populated from the environment.
type Config struct {
	MongoURI  string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017/photoshare" validate:"required"`
	Port      int    `env:"PORT" envDefault:"4000" validate:"min=1,max=65535"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads" validate:"required"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads configuration from a .env file (if present) and the process
// environment, applies defaults and validates the result.
func Load() (*Config, error) {
	// Ignore error if .env file doesn't exist (e.g. in production)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
