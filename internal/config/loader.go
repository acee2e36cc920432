package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load builds and validates the worker configuration.
//
// Steps, in order:
//  1. Load a .env file if present (non-fatal if missing; existing environment
//     variables are never overridden).
//  2. Process envconfig tags to populate the Config struct.
//  3. Validate the populated struct; any violation fails the load.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
