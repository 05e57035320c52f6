//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/infrastructure/persistence/models"
	"rsa_vault_service/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestKeyPairSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	record := CreateTestRecord(t, userID)

	err := ctx.KeyPairRepo.Create(context.Background(), record)
	require.NoError(t, err)

	var createdModel models.KeyPairModel
	err = ctx.DB.First(&createdModel, "id = ?", record.ID).Error
	require.NoError(t, err)
	assert.Equal(t, record.ID, createdModel.ID)
	assert.Equal(t, record.PublicMaterial, createdModel.PublicMaterial)
}

func TestKeyPairSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	record := CreateTestRecordWithOptions(t, userID, TestBitLength1024, time.Now())

	err := ctx.KeyPairRepo.Create(context.Background(), record)
	require.NoError(t, err)

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, TestBitLength1024, fetched.BitLength)
	assert.Equal(t, record.PrivateMaterial, fetched.PrivateMaterial)
}

func TestKeyPairSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	record1 := CreateTestRecordWithOptions(t, userID, TestBitLength512, time.Now())
	record2 := CreateTestRecordWithOptions(t, userID, TestBitLength1024, time.Now())

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record1))
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record2))

	records, err := ctx.KeyPairRepo.List(context.Background(), keys.NewKeyPairQuery())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestKeyPairSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	record := CreateTestRecord(t, userID)

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record))
	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), record.ID))

	var deletedModel models.KeyPairModel
	err := ctx.DB.First(&deletedModel, "id = ?", record.ID).Error
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestKeyPairRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record, err := ctx.KeyPairRepo.GetByID(context.Background(), uuid.NewString())
	assert.Nil(t, record)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestKeyPairRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	invalidRecord := &keys.KeyPairRecord{} // Missing required fields

	err := ctx.KeyPairRepo.Create(context.Background(), invalidRecord)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestKeyPairSqliteRepository_List_WithFiltersAndSorting(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	record1 := CreateTestRecordWithOptions(t, userID, TestBitLength512, time.Now().Add(-2*time.Hour))
	record2 := CreateTestRecordWithOptions(t, userID, TestBitLength1024, time.Now().Add(-1*time.Hour))

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record1))
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record2))

	// Test filtering by bit length
	query := &keys.KeyPairQuery{BitLength: TestBitLength512}
	filtered, err := ctx.KeyPairRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.Equal(t, TestBitLength512, filtered[0].BitLength)

	// Test sorting
	query = &keys.KeyPairQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
	sorted, err := ctx.KeyPairRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, sorted, 2)
	assert.True(t, sorted[0].DateTimeCreated.After(sorted[1].DateTimeCreated))

	// Test pagination
	query = &keys.KeyPairQuery{Limit: 1, Offset: 1}
	paged, err := ctx.KeyPairRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestKeyPairSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := &keys.KeyPairQuery{SortBy: "user_id; DROP TABLE key_pairs"}
	records, err := ctx.KeyPairRepo.List(context.Background(), query)
	assert.Nil(t, records)
	assert.Error(t, err)
}
