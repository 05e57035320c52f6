// Package app wires the domain contracts together into application
// services: key pair generation and storage, metadata management, material
// export and payload encryption/decryption under stored keys.
package app

import (
	"context"
	"fmt"
	"time"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyPairGenerationService implements the KeyPairGenerationService interface
type keyPairGenerationService struct {
	generator   rsa.KeyPairGenerator
	codec       rsa.KeyCodec
	keyPairRepo keys.KeyPairRepository
	logger      logger.Logger
}

// NewKeyPairGenerationService creates a new keyPairGenerationService instance
func NewKeyPairGenerationService(
	generator rsa.KeyPairGenerator,
	codec rsa.KeyCodec,
	keyPairRepo keys.KeyPairRepository,
	logger logger.Logger,
) (keys.KeyPairGenerationService, error) {
	return &keyPairGenerationService{
		generator:   generator,
		codec:       codec,
		keyPairRepo: keyPairRepo,
		logger:      logger,
	}, nil
}

// Generate creates a new key pair, exports its material through the codec
// and persists the resulting record.
func (s *keyPairGenerationService) Generate(ctx context.Context, userID string, bitLength int) (*keys.KeyPairRecord, error) {
	keyPair, err := s.generator.GenerateKeyPair(bitLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	publicMaterial, err := s.codec.ExportPublicKey(keyPair.Public)
	if err != nil {
		return nil, fmt.Errorf("failed to export public key: %w", err)
	}

	privateMaterial, err := s.codec.ExportPrivateKey(keyPair.Private)
	if err != nil {
		return nil, fmt.Errorf("failed to export private key: %w", err)
	}

	record := &keys.KeyPairRecord{
		ID:              uuid.New().String(),
		BitLength:       bitLength,
		PublicExponent:  keyPair.Public.E.Uint64(),
		PublicMaterial:  publicMaterial,
		PrivateMaterial: privateMaterial,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}

	if err := s.keyPairRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist key pair record: %w", err)
	}

	s.logger.Info("Generated and stored key pair with id ", record.ID)
	return record, nil
}

// keyPairMetadataService implements the KeyPairMetadataService interface
type keyPairMetadataService struct {
	keyPairRepo keys.KeyPairRepository
	logger      logger.Logger
}

// NewKeyPairMetadataService creates a new keyPairMetadataService instance
func NewKeyPairMetadataService(
	keyPairRepo keys.KeyPairRepository,
	logger logger.Logger,
) (keys.KeyPairMetadataService, error) {
	return &keyPairMetadataService{
		keyPairRepo: keyPairRepo,
		logger:      logger,
	}, nil
}

// List retrieves stored key pair records considering the query filters.
func (s *keyPairMetadataService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairRecord, error) {
	records, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return records, nil
}

// GetByID retrieves a stored key pair record by its unique ID.
func (s *keyPairMetadataService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairRecord, error) {
	record, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return record, nil
}

// DeleteByID deletes a stored key pair record by its unique ID.
func (s *keyPairMetadataService) DeleteByID(ctx context.Context, keyPairID string) error {
	if err := s.keyPairRepo.DeleteByID(ctx, keyPairID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// keyPairMaterialService implements the KeyPairMaterialService interface
type keyPairMaterialService struct {
	keyPairRepo keys.KeyPairRepository
	logger      logger.Logger
}

// NewKeyPairMaterialService creates a new keyPairMaterialService instance
func NewKeyPairMaterialService(
	keyPairRepo keys.KeyPairRepository,
	logger logger.Logger,
) (keys.KeyPairMaterialService, error) {
	return &keyPairMaterialService{
		keyPairRepo: keyPairRepo,
		logger:      logger,
	}, nil
}

// ExportPublicKeyByID returns the exported public key material.
func (s *keyPairMaterialService) ExportPublicKeyByID(ctx context.Context, keyPairID string) (string, error) {
	record, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return record.PublicMaterial, nil
}

// ExportPrivateKeyByID returns the exported private key material.
func (s *keyPairMaterialService) ExportPrivateKeyByID(ctx context.Context, keyPairID string) (string, error) {
	record, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return record.PrivateMaterial, nil
}

// payloadCryptoService implements the PayloadCryptoService interface
type payloadCryptoService struct {
	engine      rsa.CryptoEngine
	codec       rsa.KeyCodec
	keyPairRepo keys.KeyPairRepository
	logger      logger.Logger
}

// NewPayloadCryptoService creates a new payloadCryptoService instance
func NewPayloadCryptoService(
	engine rsa.CryptoEngine,
	codec rsa.KeyCodec,
	keyPairRepo keys.KeyPairRepository,
	logger logger.Logger,
) (keys.PayloadCryptoService, error) {
	return &payloadCryptoService{
		engine:      engine,
		codec:       codec,
		keyPairRepo: keyPairRepo,
		logger:      logger,
	}, nil
}

// Encrypt encrypts a single-block payload under the stored key pair.
func (s *payloadCryptoService) Encrypt(ctx context.Context, keyPairID string, plaintext []byte) ([]byte, error) {
	record, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicKey, err := s.codec.ImportPublicKey(record.PublicMaterial)
	if err != nil {
		return nil, fmt.Errorf("failed to import stored public key: %w", err)
	}

	ciphertext, err := s.engine.Encrypt(plaintext, publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ciphertext, nil
}

// Decrypt decrypts a ciphertext block under the stored key pair.
func (s *payloadCryptoService) Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error) {
	record, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	privateKey, err := s.codec.ImportPrivateKey(record.PrivateMaterial)
	if err != nil {
		return nil, fmt.Errorf("failed to import stored private key: %w", err)
	}

	plaintext, err := s.engine.Decrypt(ciphertext, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return plaintext, nil
}
