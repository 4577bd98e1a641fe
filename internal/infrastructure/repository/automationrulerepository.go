package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/mappers"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type AutomationRuleRepository struct {
	db     *gorm.DB
	mapper mappers.AutomationRuleMapper
	logger logger.Interface
}

func NewAutomationRuleRepository(db *gorm.DB, logger logger.Interface) automation.Repository {
	return &AutomationRuleRepository{
		db:     db,
		mapper: mappers.NewAutomationRuleMapper(),
		logger: logger,
	}
}

func (r *AutomationRuleRepository) Create(ctx context.Context, entity *automation.Rule) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create automation rule", "business_id", entity.BusinessID, "error", err)
		return fmt.Errorf("failed to create automation rule: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *AutomationRuleRepository) GetBySID(ctx context.Context, sid string) (*automation.Rule, error) {
	var model models.AutomationRuleModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("automation rule not found")
		}
		return nil, fmt.Errorf("failed to get automation rule: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *AutomationRuleRepository) ListByBusinessID(ctx context.Context, businessID uint) ([]*automation.Rule, error) {
	var ms []*models.AutomationRuleModel

	if err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list automation rules: %w", err)
	}

	return r.mapper.ToEntities(ms), nil
}

func (r *AutomationRuleRepository) Update(ctx context.Context, entity *automation.Rule) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update automation rule: %w", err)
	}
	return nil
}

func (r *AutomationRuleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.AutomationRuleModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete automation rule: %w", err)
	}
	return nil
}
