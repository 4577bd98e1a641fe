package mappers

import (
	"github.com/reputaai/reputaai/internal/domain/campaign"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
)

type CampaignMapper interface {
	ToEntity(model *models.CampaignModel) *campaign.Campaign
	ToModel(entity *campaign.Campaign) *models.CampaignModel
	ToEntities(ms []*models.CampaignModel) []*campaign.Campaign

	RecipientToEntity(model *models.CampaignRecipientModel) *campaign.Recipient
	RecipientToModel(entity *campaign.Recipient) *models.CampaignRecipientModel
	RecipientsToEntities(ms []*models.CampaignRecipientModel) []*campaign.Recipient
}

type campaignMapper struct{}

func NewCampaignMapper() CampaignMapper {
	return &campaignMapper{}
}

func (m *campaignMapper) ToEntity(model *models.CampaignModel) *campaign.Campaign {
	if model == nil {
		return nil
	}
	return &campaign.Campaign{
		ID:         model.ID,
		SID:        model.SID,
		BusinessID: model.BusinessID,
		Name:       model.Name,
		Channel:    model.Channel,
		Template:   model.Template,
		Status:     model.Status,
		SentCount:  model.SentCount,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func (m *campaignMapper) ToModel(entity *campaign.Campaign) *models.CampaignModel {
	if entity == nil {
		return nil
	}
	return &models.CampaignModel{
		ID:         entity.ID,
		SID:        entity.SID,
		BusinessID: entity.BusinessID,
		Name:       entity.Name,
		Channel:    entity.Channel,
		Template:   entity.Template,
		Status:     entity.Status,
		SentCount:  entity.SentCount,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func (m *campaignMapper) ToEntities(ms []*models.CampaignModel) []*campaign.Campaign {
	entities := make([]*campaign.Campaign, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}

func (m *campaignMapper) RecipientToEntity(model *models.CampaignRecipientModel) *campaign.Recipient {
	if model == nil {
		return nil
	}
	return &campaign.Recipient{
		ID:         model.ID,
		CampaignID: model.CampaignID,
		Contact:    model.Contact,
		Token:      model.Token,
		Status:     model.Status,
		SentAt:     model.SentAt,
		CreatedAt:  model.CreatedAt,
	}
}

func (m *campaignMapper) RecipientToModel(entity *campaign.Recipient) *models.CampaignRecipientModel {
	if entity == nil {
		return nil
	}
	return &models.CampaignRecipientModel{
		ID:         entity.ID,
		CampaignID: entity.CampaignID,
		Contact:    entity.Contact,
		Token:      entity.Token,
		Status:     entity.Status,
		SentAt:     entity.SentAt,
		CreatedAt:  entity.CreatedAt,
	}
}

func (m *campaignMapper) RecipientsToEntities(ms []*models.CampaignRecipientModel) []*campaign.Recipient {
	entities := make([]*campaign.Recipient, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.RecipientToEntity(model))
	}
	return entities
}
