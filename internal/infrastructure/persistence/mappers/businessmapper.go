package mappers

import (
	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
)

type BusinessMapper interface {
	ToEntity(model *models.BusinessModel) *business.Business
	ToModel(entity *business.Business) *models.BusinessModel
	ToEntities(ms []*models.BusinessModel) []*business.Business
}

type businessMapper struct{}

func NewBusinessMapper() BusinessMapper {
	return &businessMapper{}
}

func (m *businessMapper) ToEntity(model *models.BusinessModel) *business.Business {
	if model == nil {
		return nil
	}
	return &business.Business{
		ID:         model.ID,
		SID:        model.SID,
		OwnerID:    model.OwnerID,
		Name:       model.Name,
		PlaceID:    model.PlaceID,
		Address:    model.Address,
		Phone:      model.Phone,
		ReviewLink: model.ReviewLink,
		ReplyTone:  model.ReplyTone,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func (m *businessMapper) ToModel(entity *business.Business) *models.BusinessModel {
	if entity == nil {
		return nil
	}
	return &models.BusinessModel{
		ID:         entity.ID,
		SID:        entity.SID,
		OwnerID:    entity.OwnerID,
		Name:       entity.Name,
		PlaceID:    entity.PlaceID,
		Address:    entity.Address,
		Phone:      entity.Phone,
		ReviewLink: entity.ReviewLink,
		ReplyTone:  entity.ReplyTone,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func (m *businessMapper) ToEntities(ms []*models.BusinessModel) []*business.Business {
	entities := make([]*business.Business, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
