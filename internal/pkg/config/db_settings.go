package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings for the key pair store.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// sqlite falls back to an in-memory database when no DSN is set
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	return nil
}
