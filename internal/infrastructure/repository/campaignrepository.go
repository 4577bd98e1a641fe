package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reputaai/reputaai/internal/domain/campaign"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/mappers"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type CampaignRepository struct {
	db     *gorm.DB
	mapper mappers.CampaignMapper
	logger logger.Interface
}

func NewCampaignRepository(db *gorm.DB, logger logger.Interface) campaign.Repository {
	return &CampaignRepository{
		db:     db,
		mapper: mappers.NewCampaignMapper(),
		logger: logger,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, entity *campaign.Campaign) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create campaign", "business_id", entity.BusinessID, "error", err)
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *CampaignRepository) GetBySID(ctx context.Context, sid string) (*campaign.Campaign, error) {
	var model models.CampaignModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("campaign not found")
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *CampaignRepository) ListByBusinessID(ctx context.Context, businessID uint) ([]*campaign.Campaign, error) {
	var ms []*models.CampaignModel

	if err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return r.mapper.ToEntities(ms), nil
}

func (r *CampaignRepository) Update(ctx context.Context, entity *campaign.Campaign) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", id).Delete(&models.CampaignRecipientModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete campaign recipients: %w", err)
		}
		if err := tx.Delete(&models.CampaignModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete campaign: %w", err)
		}
		return nil
	})
}

func (r *CampaignRepository) AddRecipients(ctx context.Context, campaignID uint, recipients []*campaign.Recipient) error {
	if len(recipients) == 0 {
		return nil
	}

	ms := make([]*models.CampaignRecipientModel, 0, len(recipients))
	for _, recipient := range recipients {
		recipient.CampaignID = campaignID
		ms = append(ms, r.mapper.RecipientToModel(recipient))
	}

	if err := r.db.WithContext(ctx).Create(&ms).Error; err != nil {
		r.logger.Errorw("failed to add campaign recipients", "campaign_id", campaignID, "count", len(ms), "error", err)
		return fmt.Errorf("failed to add campaign recipients: %w", err)
	}

	for i, model := range ms {
		recipients[i].ID = model.ID
	}
	return nil
}

func (r *CampaignRepository) ListRecipients(ctx context.Context, campaignID uint) ([]*campaign.Recipient, error) {
	var ms []*models.CampaignRecipientModel

	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list campaign recipients: %w", err)
	}

	return r.mapper.RecipientsToEntities(ms), nil
}

func (r *CampaignRepository) UpdateRecipient(ctx context.Context, entity *campaign.Recipient) error {
	model := r.mapper.RecipientToModel(entity)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update campaign recipient: %w", err)
	}
	return nil
}
