// Package commands implements the cobra sub-commands of rsa-vault-cli.
package commands

import (
	"fmt"

	"rsa_vault_service/internal/pkg/config"
	"rsa_vault_service/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
