package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates the settings consumed by the REST API binary.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	RSA      RSASettings      `mapstructure:"rsa"`
}

// Validate checks every settings section.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.RSA.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads the REST API configuration from the given yaml
// file. Values can be overridden through environment variables prefixed with
// RSA_VAULT, e.g. RSA_VAULT_DATABASE_DSN.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("RSA_VAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("rsa.default_key_size", 2048)
	v.SetDefault("rsa.public_exponent", 65537)
	v.SetDefault("rsa.miller_rabin_rounds", 5)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
