package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/connection"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type HandleCallbackCommand struct {
	State string
	Code  string
}

type HandleCallbackResult struct {
	Account *connection.ConnectedAccount
}

type HandleCallbackUseCase struct {
	accountRepo connection.AccountRepository
	oauthClient OAuthClient
	stateStore  StateStore
	cipher      TokenCipher
	logger      logger.Interface
}

func NewHandleCallbackUseCase(
	accountRepo connection.AccountRepository,
	oauthClient OAuthClient,
	stateStore StateStore,
	cipher TokenCipher,
	logger logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		accountRepo: accountRepo,
		oauthClient: oauthClient,
		stateStore:  stateStore,
		cipher:      cipher,
		logger:      logger,
	}
}

// Execute completes the consent flow: validates the CSRF state, exchanges
// the code, and stores the encrypted token pair. Re-connecting replaces the
// stored tokens for the existing account instead of creating a second row.
func (uc *HandleCallbackUseCase) Execute(ctx context.Context, cmd HandleCallbackCommand) (*HandleCallbackResult, error) {
	userID, err := uc.stateStore.Consume(ctx, cmd.State)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid or expired authorization state")
	}

	token, err := uc.oauthClient.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("code exchange failed", "user_id", userID, "error", err)
		return nil, apperrors.NewBadRequestError("authorization code exchange failed")
	}

	info, err := uc.oauthClient.GetAccountInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider account info: %w", err)
	}

	encAccess, err := uc.cipher.Encrypt(token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encRefresh, err := uc.cipher.Encrypt(token.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	existing, err := uc.accountRepo.GetByUserAndProvider(ctx, userID, connection.ProviderGoogle)
	if err != nil && !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	if existing != nil {
		existing.ProviderAccountID = info.ID
		existing.EncryptedRefreshToken = encRefresh
		existing.RotateAccessToken(encAccess, token.Expiry)
		if err := uc.accountRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		uc.logger.Infow("provider account reconnected", "user_id", userID, "account_id", existing.ID)
		return &HandleCallbackResult{Account: existing}, nil
	}

	account, err := connection.NewConnectedAccount(userID, connection.ProviderGoogle, info.ID, encAccess, encRefresh, token.Expiry)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.Infow("provider account connected", "user_id", userID, "account_id", account.ID)

	return &HandleCallbackResult{Account: account}, nil
}
