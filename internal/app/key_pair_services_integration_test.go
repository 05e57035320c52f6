//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/json"
	"testing"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairGenerationService_Generate_Success(t *testing.T) {
	tests := []struct {
		name      string
		bitLength int
	}{
		{"256-bit key pair", 256},
		{"512-bit key pair", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := SetupTestServices(t, config.SqliteDbType)
			userID := uuid.NewString()

			record, err := services.GenerationService.Generate(context.Background(), userID, tt.bitLength)
			require.NoError(t, err)

			assert.NotEmpty(t, record.ID)
			assert.Equal(t, tt.bitLength, record.BitLength)
			assert.Equal(t, uint64(65537), record.PublicExponent)
			assert.Equal(t, userID, record.UserID)
			assert.False(t, record.DateTimeCreated.IsZero())

			// Both materials must be well formed JSON records.
			var publicFields map[string]string
			require.NoError(t, json.Unmarshal([]byte(record.PublicMaterial), &publicFields))
			assert.Contains(t, publicFields, "e")
			assert.Contains(t, publicFields, "n")

			var privateFields map[string]string
			require.NoError(t, json.Unmarshal([]byte(record.PrivateMaterial), &privateFields))
			assert.Contains(t, privateFields, "d")
			assert.Contains(t, privateFields, "n")
		})
	}
}

func TestKeyPairGenerationService_Generate_InvalidBitLength(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.GenerationService.Generate(context.Background(), uuid.NewString(), 15)
	assert.Error(t, err)
}

func TestKeyPairMetadataService_ListAndGet(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	record1, err := services.GenerationService.Generate(context.Background(), userID, 256)
	require.NoError(t, err)
	record2, err := services.GenerationService.Generate(context.Background(), userID, 512)
	require.NoError(t, err)

	records, err := services.MetadataService.List(context.Background(), keys.NewKeyPairQuery())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	fetched, err := services.MetadataService.GetByID(context.Background(), record1.ID)
	require.NoError(t, err)
	assert.Equal(t, record1.ID, fetched.ID)

	query := &keys.KeyPairQuery{BitLength: 512}
	filtered, err := services.MetadataService.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, record2.ID, filtered[0].ID)
}

func TestKeyPairMetadataService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	record, err := services.GenerationService.Generate(context.Background(), uuid.NewString(), 256)
	require.NoError(t, err)

	require.NoError(t, services.MetadataService.DeleteByID(context.Background(), record.ID))

	fetched, err := services.MetadataService.GetByID(context.Background(), record.ID)
	assert.Nil(t, fetched)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestKeyPairMaterialService_Export(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	record, err := services.GenerationService.Generate(context.Background(), uuid.NewString(), 256)
	require.NoError(t, err)

	publicMaterial, err := services.MaterialService.ExportPublicKeyByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.PublicMaterial, publicMaterial)

	privateMaterial, err := services.MaterialService.ExportPrivateKeyByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.PrivateMaterial, privateMaterial)
}

func TestKeyPairMaterialService_Export_NotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.MaterialService.ExportPublicKeyByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
}

func TestPayloadCryptoService_EncryptDecrypt_RoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	record, err := services.GenerationService.Generate(context.Background(), uuid.NewString(), 256)
	require.NoError(t, err)

	plaintext := []byte("stored key round trip")

	ciphertext, err := services.CryptoService.Encrypt(context.Background(), record.ID, plaintext)
	require.NoError(t, err)
	assert.Len(t, ciphertext, 32)
	assert.NotEqual(t, plaintext, ciphertext)

	recovered, err := services.CryptoService.Decrypt(context.Background(), record.ID, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

func TestPayloadCryptoService_Encrypt_MessageTooLong(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	record, err := services.GenerationService.Generate(context.Background(), uuid.NewString(), 256)
	require.NoError(t, err)

	// A 256-bit modulus holds at most 32 - 11 = 21 message bytes.
	plaintext := make([]byte, 22)

	_, err = services.CryptoService.Encrypt(context.Background(), record.ID, plaintext)
	require.Error(t, err)
	assert.ErrorIs(t, err, rsa.ErrMessageTooLong)
}

func TestPayloadCryptoService_Decrypt_WrongKey(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	record1, err := services.GenerationService.Generate(context.Background(), userID, 256)
	require.NoError(t, err)
	record2, err := services.GenerationService.Generate(context.Background(), userID, 256)
	require.NoError(t, err)

	plaintext := []byte("bound to the first key")

	ciphertext, err := services.CryptoService.Encrypt(context.Background(), record1.ID, plaintext)
	require.NoError(t, err)

	recovered, err := services.CryptoService.Decrypt(context.Background(), record2.ID, ciphertext)
	if err != nil {
		assert.ErrorIs(t, err, rsa.ErrInvalidPadding)
	} else {
		assert.NotEqual(t, plaintext, recovered)
	}
}

func TestPayloadCryptoService_Encrypt_UnknownKeyPair(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.CryptoService.Encrypt(context.Background(), uuid.NewString(), []byte("payload"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
