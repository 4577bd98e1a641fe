package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/mappers"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type BusinessRepository struct {
	db     *gorm.DB
	mapper mappers.BusinessMapper
	logger logger.Interface
}

func NewBusinessRepository(db *gorm.DB, logger logger.Interface) business.Repository {
	return &BusinessRepository{
		db:     db,
		mapper: mappers.NewBusinessMapper(),
		logger: logger,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, entity *business.Business) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create business", "owner_id", entity.OwnerID, "error", err)
		return fmt.Errorf("failed to create business: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *BusinessRepository) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	var model models.BusinessModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("business not found")
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *BusinessRepository) GetBySID(ctx context.Context, sid string) (*business.Business, error) {
	var model models.BusinessModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("business not found")
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *BusinessRepository) ListByOwnerID(ctx context.Context, ownerID uint) ([]*business.Business, error) {
	var ms []*models.BusinessModel

	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	return r.mapper.ToEntities(ms), nil
}

func (r *BusinessRepository) List(ctx context.Context, offset, limit int) ([]*business.Business, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.BusinessModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count businesses: %w", err)
	}

	var ms []*models.BusinessModel
	if err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list businesses: %w", err)
	}

	return r.mapper.ToEntities(ms), total, nil
}

func (r *BusinessRepository) Update(ctx context.Context, entity *business.Business) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update business", "id", entity.ID, "error", err)
		return fmt.Errorf("failed to update business: %w", err)
	}
	return nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.BusinessModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	return nil
}
