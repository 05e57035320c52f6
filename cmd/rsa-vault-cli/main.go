// Package main is the entry point for the rsa-vault-cli application.
// It initializes the root command, registers the key and payload
// sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_vault_service/cmd/rsa-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-vault-cli",
		Short: "RSA operations CLI tool",
		Long: `rsa-vault-cli is a command-line tool for RSA operations built from
first principles: key pair generation with a Miller-Rabin prime search,
PKCS#1 v1.5 single-block encryption and decryption, and key import/export
in a transparent JSON exchange format.

The implementation is educational and not hardened against timing side
channels; do not use it to protect production secrets.`,
	}

	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitPayloadCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize payload commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
