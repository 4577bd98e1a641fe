package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/mappers"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ConnectedAccountRepository struct {
	db     *gorm.DB
	mapper mappers.ConnectedAccountMapper
	logger logger.Interface
}

func NewConnectedAccountRepository(db *gorm.DB, logger logger.Interface) connection.AccountRepository {
	return &ConnectedAccountRepository{
		db:     db,
		mapper: mappers.NewConnectedAccountMapper(),
		logger: logger,
	}
}

func (r *ConnectedAccountRepository) Create(ctx context.Context, entity *connection.ConnectedAccount) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("account already connected for this provider")
		}
		r.logger.Errorw("failed to create connected account", "user_id", entity.UserID, "error", err)
		return fmt.Errorf("failed to create connected account: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *ConnectedAccountRepository) GetByID(ctx context.Context, id uint) (*connection.ConnectedAccount, error) {
	var model models.ConnectedAccountModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("connected account not found")
		}
		return nil, fmt.Errorf("failed to get connected account: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ConnectedAccountRepository) GetByUserAndProvider(ctx context.Context, userID uint, provider string) (*connection.ConnectedAccount, error) {
	var model models.ConnectedAccountModel

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("connected account not found")
		}
		return nil, fmt.Errorf("failed to get connected account: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ConnectedAccountRepository) Update(ctx context.Context, entity *connection.ConnectedAccount) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update connected account", "id", entity.ID, "error", err)
		return fmt.Errorf("failed to update connected account: %w", err)
	}
	return nil
}

// Delete removes the account and its location links in one transaction so a
// disconnect never leaves orphaned locations behind.
func (r *ConnectedAccountRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.ConnectedLocationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete connected locations: %w", err)
		}
		if err := tx.Delete(&models.ConnectedAccountModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete connected account: %w", err)
		}
		return nil
	})
}

type ConnectedLocationRepository struct {
	db     *gorm.DB
	mapper mappers.ConnectedLocationMapper
	logger logger.Interface
}

func NewConnectedLocationRepository(db *gorm.DB, logger logger.Interface) connection.LocationRepository {
	return &ConnectedLocationRepository{
		db:     db,
		mapper: mappers.NewConnectedLocationMapper(),
		logger: logger,
	}
}

// Upsert replaces the location link for the business. One business maps to
// at most one external location; re-selecting swaps the link in place.
func (r *ConnectedLocationRepository) Upsert(ctx context.Context, entity *connection.ConnectedLocation) error {
	model := r.mapper.ToModel(entity)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "business_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"account_id", "location_name", "title", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert connected location", "business_id", entity.BusinessID, "error", err)
		return fmt.Errorf("failed to upsert connected location: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *ConnectedLocationRepository) GetByBusinessID(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error) {
	var model models.ConnectedLocationModel

	if err := r.db.WithContext(ctx).Where("business_id = ?", businessID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("no location connected for this business")
		}
		return nil, fmt.Errorf("failed to get connected location: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ConnectedLocationRepository) ListAll(ctx context.Context) ([]*connection.ConnectedLocation, error) {
	var ms []*models.ConnectedLocationModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list connected locations: %w", err)
	}

	return r.mapper.ToEntities(ms), nil
}

func (r *ConnectedLocationRepository) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	if err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Delete(&models.ConnectedLocationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete connected location: %w", err)
	}
	return nil
}

func (r *ConnectedLocationRepository) DeleteByAccountID(ctx context.Context, accountID uint) error {
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&models.ConnectedLocationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete connected locations: %w", err)
	}
	return nil
}
