package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/cryptography"
	"rsa_vault_service/internal/infrastructure/keycodec"
	"rsa_vault_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PayloadCommandHandler encapsulates logic for encrypting and decrypting
// payload files via CLI.
type PayloadCommandHandler struct {
	engine rsa.CryptoEngine
	codec  rsa.KeyCodec
	logger logger.Logger
}

// NewPayloadCommandHandler initializes a new PayloadCommandHandler with
// logging, the crypto engine and the key codec.
func NewPayloadCommandHandler() (*PayloadCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	engine, err := cryptography.NewCryptoEngine(nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto engine: %w", err)
	}

	codec, err := keycodec.NewJSONKeyCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key codec: %w", err)
	}

	return &PayloadCommandHandler{
		engine: engine,
		codec:  codec,
		logger: loggerInstance,
	}, nil
}

// EncryptCmd encrypts a single-block payload file using an exported public key
func (commandHandler *PayloadCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	material, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, err := commandHandler.codec.ImportPublicKey(string(material))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := commandHandler.engine.Encrypt(plainText, publicKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, encryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts a ciphertext file using an exported private key
func (commandHandler *PayloadCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	material, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := commandHandler.codec.ImportPrivateKey(string(material))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := commandHandler.engine.Decrypt(encryptedData, privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, decryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// InitPayloadCommands registers payload encryption commands
func InitPayloadCommands(rootCmd *cobra.Command) error {
	handler, err := NewPayloadCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create payload command handler %w", err)
	}

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a single-block payload file using an exported public key",
		Run:   handler.EncryptCmd,
	}
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptFileCmd.Flags().StringP("public-key", "", "", "Path to an exported RSA public key")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext file using an exported private key",
		Run:   handler.DecryptCmd,
	}
	decryptFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptFileCmd.Flags().StringP("private-key", "", "", "Path to an exported RSA private key")
	rootCmd.AddCommand(decryptFileCmd)

	return nil
}
