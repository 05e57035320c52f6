package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/cryptography"
	"rsa_vault_service/internal/infrastructure/keycodec"
	"rsa_vault_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling key pair operations via CLI.
type KeyCommandHandler struct {
	builder rsa.KeyPairGenerator
	codec   rsa.KeyCodec
	logger  logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging,
// a key pair builder and the key codec.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	// nil reader selects crypto/rand, nil settings the defaults
	builder, err := cryptography.NewKeyPairBuilder(nil, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair builder: %w", err)
	}

	codec, err := keycodec.NewJSONKeyCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key codec: %w", err)
	}

	return &KeyCommandHandler{
		builder: builder,
		codec:   codec,
		logger:  loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists the exported
// material in a selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	keyPair, err := commandHandler.builder.GenerateKeyPair(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicMaterial, err := commandHandler.codec.ExportPublicKey(keyPair.Public)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateMaterial, err := commandHandler.codec.ExportPrivateKey(keyPair.Private)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.json", keyDir, uniqueID.String())
	if err := os.WriteFile(publicKeyFilePath, []byte(publicMaterial), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Saved public key ", publicKeyFilePath)

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.json", keyDir, uniqueID.String())
	if err := os.WriteFile(privateKeyFilePath, []byte(privateMaterial), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Saved private key ", privateKeyFilePath)
}

// InspectKeyCmd prints the modulus size and exponent of an exported key
func (commandHandler *KeyCommandHandler) InspectKeyCmd(cmd *cobra.Command, _ []string) {
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag: ", err)
		return
	}

	material, err := os.ReadFile(filepath.Clean(keyFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if publicKey, err := commandHandler.codec.ImportPublicKey(string(material)); err == nil {
		commandHandler.logger.Info("Public key: modulus ", publicKey.N.BitLen(), " bits, exponent ", publicKey.E.String())
		return
	}

	privateKey, err := commandHandler.codec.ImportPrivateKey(string(material))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Private key: modulus ", privateKey.N.BitLen(), " bits, exponent ", privateKey.D.BitLen(), " bits")
}

// InitKeyCommands registers key pair commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 2048, "Modulus size in bits (default 2048)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the exported keys")
	rootCmd.AddCommand(generateKeysCmd)

	var inspectKeyCmd = &cobra.Command{
		Use:   "inspect-key",
		Short: "Print the parameters of an exported key",
		Run:   handler.InspectKeyCmd,
	}
	inspectKeyCmd.Flags().StringP("key-file", "", "", "Path to an exported key file")
	rootCmd.AddCommand(inspectKeyCmd)

	return nil
}
