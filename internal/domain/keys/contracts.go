package keys

import (
	"context"
)

// KeyPairGenerationService defines methods for generating and persisting
// RSA key pairs.
type KeyPairGenerationService interface {
	// Generate creates a new key pair with the given modulus bit length,
	// exports its material and persists the resulting record.
	// It returns the stored record and any error encountered.
	Generate(ctx context.Context, userID string, bitLength int) (*KeyPairRecord, error)
}

// KeyPairMetadataService defines methods for listing and deleting stored
// key pairs.
type KeyPairMetadataService interface {
	// List retrieves stored key pair records considering the query filters.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairRecord, error)

	// GetByID retrieves a stored key pair record by its unique ID.
	GetByID(ctx context.Context, keyPairID string) (*KeyPairRecord, error)

	// DeleteByID deletes a stored key pair record by its unique ID.
	DeleteByID(ctx context.Context, keyPairID string) error
}

// KeyPairMaterialService defines methods for retrieving exported key
// material of stored key pairs.
type KeyPairMaterialService interface {
	// ExportPublicKeyByID returns the exported public key material.
	ExportPublicKeyByID(ctx context.Context, keyPairID string) (string, error)

	// ExportPrivateKeyByID returns the exported private key material.
	ExportPrivateKeyByID(ctx context.Context, keyPairID string) (string, error)
}

// PayloadCryptoService defines methods for encrypting and decrypting
// payloads under a stored key pair.
type PayloadCryptoService interface {
	// Encrypt encrypts a single-block payload under the stored key pair.
	Encrypt(ctx context.Context, keyPairID string, plaintext []byte) ([]byte, error)

	// Decrypt decrypts a ciphertext block under the stored key pair.
	Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error)
}

// KeyPairRepository defines the interface for key pair record persistence.
type KeyPairRepository interface {
	Create(ctx context.Context, record *KeyPairRecord) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairRecord, error)
	GetByID(ctx context.Context, keyPairID string) (*KeyPairRecord, error)
	DeleteByID(ctx context.Context, keyPairID string) error
}
