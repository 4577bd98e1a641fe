package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/connection"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type DisconnectCommand struct {
	UserID uint
}

type DisconnectUseCase struct {
	accountRepo connection.AccountRepository
	logger      logger.Interface
}

func NewDisconnectUseCase(accountRepo connection.AccountRepository, logger logger.Interface) *DisconnectUseCase {
	return &DisconnectUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Execute removes the provider grant and all location links that depend on
// it. Cached reviews stay; they just stop refreshing.
func (uc *DisconnectUseCase) Execute(ctx context.Context, cmd DisconnectCommand) error {
	account, err := uc.accountRepo.GetByUserAndProvider(ctx, cmd.UserID, connection.ProviderGoogle)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return err
	}

	uc.logger.Infow("provider account disconnected", "user_id", cmd.UserID, "account_id", account.ID)
	return nil
}
