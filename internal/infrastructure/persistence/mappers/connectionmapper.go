package mappers

import (
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
)

type ConnectedAccountMapper interface {
	ToEntity(model *models.ConnectedAccountModel) *connection.ConnectedAccount
	ToModel(entity *connection.ConnectedAccount) *models.ConnectedAccountModel
}

type connectedAccountMapper struct{}

func NewConnectedAccountMapper() ConnectedAccountMapper {
	return &connectedAccountMapper{}
}

func (m *connectedAccountMapper) ToEntity(model *models.ConnectedAccountModel) *connection.ConnectedAccount {
	if model == nil {
		return nil
	}
	return &connection.ConnectedAccount{
		ID:                    model.ID,
		UserID:                model.UserID,
		Provider:              model.Provider,
		ProviderAccountID:     model.ProviderAccountID,
		EncryptedAccessToken:  model.EncryptedAccessToken,
		EncryptedRefreshToken: model.EncryptedRefreshToken,
		TokenExpiry:           model.TokenExpiry,
		ConnectedAt:           model.ConnectedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

func (m *connectedAccountMapper) ToModel(entity *connection.ConnectedAccount) *models.ConnectedAccountModel {
	if entity == nil {
		return nil
	}
	return &models.ConnectedAccountModel{
		ID:                    entity.ID,
		UserID:                entity.UserID,
		Provider:              entity.Provider,
		ProviderAccountID:     entity.ProviderAccountID,
		EncryptedAccessToken:  entity.EncryptedAccessToken,
		EncryptedRefreshToken: entity.EncryptedRefreshToken,
		TokenExpiry:           entity.TokenExpiry,
		ConnectedAt:           entity.ConnectedAt,
		UpdatedAt:             entity.UpdatedAt,
	}
}

type ConnectedLocationMapper interface {
	ToEntity(model *models.ConnectedLocationModel) *connection.ConnectedLocation
	ToModel(entity *connection.ConnectedLocation) *models.ConnectedLocationModel
	ToEntities(ms []*models.ConnectedLocationModel) []*connection.ConnectedLocation
}

type connectedLocationMapper struct{}

func NewConnectedLocationMapper() ConnectedLocationMapper {
	return &connectedLocationMapper{}
}

func (m *connectedLocationMapper) ToEntity(model *models.ConnectedLocationModel) *connection.ConnectedLocation {
	if model == nil {
		return nil
	}
	return &connection.ConnectedLocation{
		ID:           model.ID,
		BusinessID:   model.BusinessID,
		AccountID:    model.AccountID,
		LocationName: model.LocationName,
		Title:        model.Title,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *connectedLocationMapper) ToModel(entity *connection.ConnectedLocation) *models.ConnectedLocationModel {
	if entity == nil {
		return nil
	}
	return &models.ConnectedLocationModel{
		ID:           entity.ID,
		BusinessID:   entity.BusinessID,
		AccountID:    entity.AccountID,
		LocationName: entity.LocationName,
		Title:        entity.Title,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *connectedLocationMapper) ToEntities(ms []*models.ConnectedLocationModel) []*connection.ConnectedLocation {
	entities := make([]*connection.ConnectedLocation, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
