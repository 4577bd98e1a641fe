package mappers

import (
	"github.com/reputaai/reputaai/internal/domain/user"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
)

type SessionMapper interface {
	ToEntity(model *models.SessionModel) *user.Session
	ToModel(entity *user.Session) *models.SessionModel
}

type sessionMapper struct{}

func NewSessionMapper() SessionMapper {
	return &sessionMapper{}
}

func (m *sessionMapper) ToEntity(model *models.SessionModel) *user.Session {
	if model == nil {
		return nil
	}
	return &user.Session{
		ID:           model.ID,
		SessionID:    model.SessionID,
		UserID:       model.UserID,
		RefreshToken: model.RefreshToken,
		UserAgent:    model.UserAgent,
		IPAddress:    model.IPAddress,
		ExpiresAt:    model.ExpiresAt,
		RevokedAt:    model.RevokedAt,
		CreatedAt:    model.CreatedAt,
	}
}

func (m *sessionMapper) ToModel(entity *user.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:           entity.ID,
		SessionID:    entity.SessionID,
		UserID:       entity.UserID,
		RefreshToken: entity.RefreshToken,
		UserAgent:    entity.UserAgent,
		IPAddress:    entity.IPAddress,
		ExpiresAt:    entity.ExpiresAt,
		RevokedAt:    entity.RevokedAt,
		CreatedAt:    entity.CreatedAt,
	}
}
