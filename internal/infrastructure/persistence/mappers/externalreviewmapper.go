package mappers

import (
	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
)

type ExternalReviewMapper interface {
	ToEntity(model *models.ExternalReviewModel) *review.ExternalReview
	ToModel(entity *review.ExternalReview) *models.ExternalReviewModel
	ToEntities(ms []*models.ExternalReviewModel) []*review.ExternalReview
}

type externalReviewMapper struct{}

func NewExternalReviewMapper() ExternalReviewMapper {
	return &externalReviewMapper{}
}

func (m *externalReviewMapper) ToEntity(model *models.ExternalReviewModel) *review.ExternalReview {
	if model == nil {
		return nil
	}
	return &review.ExternalReview{
		ID:         model.ID,
		ExternalID: model.ExternalID,
		BusinessID: model.BusinessID,
		AuthorName: model.AuthorName,
		Rating:     model.Rating,
		Comment:    model.Comment,
		ReplyText:  model.ReplyText,
		Replied:    model.Replied,
		CreatedAt:  model.CreatedAt,
		RepliedAt:  model.RepliedAt,
		SyncedAt:   model.SyncedAt,
	}
}

func (m *externalReviewMapper) ToModel(entity *review.ExternalReview) *models.ExternalReviewModel {
	if entity == nil {
		return nil
	}
	return &models.ExternalReviewModel{
		ID:         entity.ID,
		ExternalID: entity.ExternalID,
		BusinessID: entity.BusinessID,
		AuthorName: entity.AuthorName,
		Rating:     entity.Rating,
		Comment:    entity.Comment,
		ReplyText:  entity.ReplyText,
		Replied:    entity.Replied,
		CreatedAt:  entity.CreatedAt,
		RepliedAt:  entity.RepliedAt,
		SyncedAt:   entity.SyncedAt,
	}
}

func (m *externalReviewMapper) ToEntities(ms []*models.ExternalReviewModel) []*review.ExternalReview {
	entities := make([]*review.ExternalReview, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
