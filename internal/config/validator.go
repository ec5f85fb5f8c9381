package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the loaded configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.SaveBackend == BackendMemory {
		warnings = append(warnings, "SAVE_BACKEND=memory - saves are lost when the process exits")
	}

	if c.SaveBackend == BackendPostgres && c.DatabaseURL == "" && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the default value - please use a secure password")
	}

	if c.Environment == "production" && c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - the API is unauthenticated")
	}

	if c.RandomSeed != 0 {
		warnings = append(warnings, fmt.Sprintf("RANDOM_SEED=%d - simulation is deterministic", c.RandomSeed))
	}

	return warnings
}
