package persistence

import (
	"context"
	"errors"
	"fmt"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/infrastructure/persistence/models"
	"rsa_vault_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyPairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyPairRepository creates a new GORM-based KeyPairRepository
// implementation
func NewGormKeyPairRepository(db *gorm.DB, logger logger.Logger) (keys.KeyPairRepository, error) {
	return &gormKeyPairRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyPairRepository) Create(ctx context.Context, record *keys.KeyPairRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyPairModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key pair record: %w", err)
	}

	r.logger.Info("Created key pair record with id ", record.ID)
	return nil
}

func (r *gormKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyPairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyPairModel{})

	if query.BitLength > 0 {
		dbQuery = dbQuery.Where("bit_length = ?", query.BitLength)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key pair records: %w", err)
	}

	domainList := make([]*keys.KeyPairRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeyPairRepository) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairRecord, error) {
	var model models.KeyPairModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyPairID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key pair with ID %s not found", keyPairID)
		}
		return nil, fmt.Errorf("failed to fetch key pair record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyPairRepository) DeleteByID(ctx context.Context, keyPairID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", keyPairID).Delete(&models.KeyPairModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete key pair record: %w", err)
	}

	r.logger.Info("Deleted key pair record with id ", keyPairID)
	return nil
}
