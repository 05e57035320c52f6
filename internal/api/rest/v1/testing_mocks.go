package v1

import (
	"context"

	"rsa_vault_service/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyPairGenerationService is a testify mock of KeyPairGenerationService
type MockKeyPairGenerationService struct {
	mock.Mock
}

// Generate mocks key pair generation
func (m *MockKeyPairGenerationService) Generate(ctx context.Context, userID string, bitLength int) (*keys.KeyPairRecord, error) {
	args := m.Called(ctx, userID, bitLength)
	if record, ok := args.Get(0).(*keys.KeyPairRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockKeyPairMetadataService is a testify mock of KeyPairMetadataService
type MockKeyPairMetadataService struct {
	mock.Mock
}

// List mocks listing stored key pairs
func (m *MockKeyPairMetadataService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairRecord, error) {
	args := m.Called(ctx, query)
	if records, ok := args.Get(0).([]*keys.KeyPairRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID mocks fetching a stored key pair
func (m *MockKeyPairMetadataService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairRecord, error) {
	args := m.Called(ctx, keyPairID)
	if record, ok := args.Get(0).(*keys.KeyPairRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteByID mocks deleting a stored key pair
func (m *MockKeyPairMetadataService) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

// MockKeyPairMaterialService is a testify mock of KeyPairMaterialService
type MockKeyPairMaterialService struct {
	mock.Mock
}

// ExportPublicKeyByID mocks public material export
func (m *MockKeyPairMaterialService) ExportPublicKeyByID(ctx context.Context, keyPairID string) (string, error) {
	args := m.Called(ctx, keyPairID)
	return args.String(0), args.Error(1)
}

// ExportPrivateKeyByID mocks private material export
func (m *MockKeyPairMaterialService) ExportPrivateKeyByID(ctx context.Context, keyPairID string) (string, error) {
	args := m.Called(ctx, keyPairID)
	return args.String(0), args.Error(1)
}

// MockPayloadCryptoService is a testify mock of PayloadCryptoService
type MockPayloadCryptoService struct {
	mock.Mock
}

// Encrypt mocks payload encryption
func (m *MockPayloadCryptoService) Encrypt(ctx context.Context, keyPairID string, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, plaintext)
	if ciphertext, ok := args.Get(0).([]byte); ok {
		return ciphertext, args.Error(1)
	}
	return nil, args.Error(1)
}

// Decrypt mocks payload decryption
func (m *MockPayloadCryptoService) Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, ciphertext)
	if plaintext, ok := args.Get(0).([]byte); ok {
		return plaintext, args.Error(1)
	}
	return nil, args.Error(1)
}
