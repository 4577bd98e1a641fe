package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reputaai/reputaai/internal/domain/user"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/mappers"
	"github.com/reputaai/reputaai/internal/infrastructure/persistence/models"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
	logger logger.Interface
}

func NewSessionRepository(db *gorm.DB, logger logger.Interface) user.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
		logger: logger,
	}
}

func (r *SessionRepository) Create(ctx context.Context, entity *user.Session) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create session", "user_id", entity.UserID, "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *SessionRepository) GetBySessionID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel

	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *SessionRepository) Update(ctx context.Context, entity *user.Session) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}
