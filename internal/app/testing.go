//go:build integration
// +build integration

package app

import (
	"testing"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/infrastructure/cryptography"
	"rsa_vault_service/internal/infrastructure/keycodec"
	"rsa_vault_service/internal/infrastructure/persistence"
	"rsa_vault_service/internal/pkg/config"
	"rsa_vault_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	GenerationService keys.KeyPairGenerationService
	MetadataService   keys.KeyPairMetadataService
	MaterialService   keys.KeyPairMaterialService
	CryptoService     keys.PayloadCryptoService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration
// tests. Key sizes stay small so full generate/encrypt/decrypt flows remain
// fast.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	settings := &config.RSASettings{
		DefaultKeySize:    256,
		PublicExponent:    65537,
		MillerRabinRounds: 5,
	}

	builder, err := cryptography.NewKeyPairBuilder(nil, settings, logger)
	require.NoError(t, err, "Failed to create key pair builder")

	engine, err := cryptography.NewCryptoEngine(nil, logger)
	require.NoError(t, err, "Failed to create crypto engine")

	codec, err := keycodec.NewJSONKeyCodec(logger)
	require.NoError(t, err, "Failed to create key codec")

	generationService, err := NewKeyPairGenerationService(builder, codec, dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create KeyPairGenerationService")

	metadataService, err := NewKeyPairMetadataService(dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create KeyPairMetadataService")

	materialService, err := NewKeyPairMaterialService(dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create KeyPairMaterialService")

	cryptoService, err := NewPayloadCryptoService(engine, codec, dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create PayloadCryptoService")

	return &TestServices{
		GenerationService: generationService,
		MetadataService:   metadataService,
		MaterialService:   materialService,
		CryptoService:     cryptoService,
		DBContext:         dbContext,
	}
}
