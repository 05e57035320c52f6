//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/infrastructure/persistence/models"
	"rsa_vault_service/internal/pkg/config"
	"rsa_vault_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestBitLength256  = 256
	TestBitLength512  = 512
	TestBitLength1024 = 1024

	TestPublicExponent = 65537
)

// TestContext holds the test database and repository
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB initializes the test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.KeyPairModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	keyPairRepo, err := NewGormKeyPairRepository(db, logger)
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: keyPairRepo,
	}
}

// CreateTestRecord creates a key pair record with default values
func CreateTestRecord(t *testing.T, userID string) *keys.KeyPairRecord {
	t.Helper()

	return CreateTestRecordWithOptions(t, userID, TestBitLength256, time.Now())
}

// CreateTestRecordWithOptions creates a key pair record with custom options
func CreateTestRecordWithOptions(t *testing.T, userID string, bitLength int, created time.Time) *keys.KeyPairRecord {
	t.Helper()

	return &keys.KeyPairRecord{
		ID:              uuid.NewString(),
		BitLength:       bitLength,
		PublicExponent:  TestPublicExponent,
		PublicMaterial:  `{"e":"AQAB","n":"DKE="}`,
		PrivateMaterial: `{"d":"CsE=","n":"DKE="}`,
		DateTimeCreated: created,
		UserID:          userID,
	}
}
