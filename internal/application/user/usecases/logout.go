package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/user"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	session, err := uc.sessionRepo.GetBySessionID(ctx, cmd.SessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Revoke()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	uc.logger.Infow("user logged out", "session_id", cmd.SessionID)
	return nil
}
