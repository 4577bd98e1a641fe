package google

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/infrastructure/crypto"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

// TokenRefresher exchanges a refresh token for a new access token.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// TokenManager resolves a ConnectedAccount's plaintext access token and
// handles the refresh-and-persist cycle. It is the only place tokens are
// decrypted.
type TokenManager struct {
	accounts  connection.AccountRepository
	cipher    *crypto.TokenCipher
	refresher TokenRefresher
	logger    logger.Interface
}

func NewTokenManager(
	accounts connection.AccountRepository,
	cipher *crypto.TokenCipher,
	refresher TokenRefresher,
	logger logger.Interface,
) *TokenManager {
	return &TokenManager{
		accounts:  accounts,
		cipher:    cipher,
		refresher: refresher,
		logger:    logger,
	}
}

// AccessToken decrypts the account's current access token. Decryption
// failure is unrecoverable for the caller: there is no plaintext fallback.
func (m *TokenManager) AccessToken(account *connection.ConnectedAccount) (string, error) {
	token, err := m.cipher.Decrypt(account.EncryptedAccessToken)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt access token for account %d: %w", account.ID, err)
	}
	return token, nil
}

// Refresh exchanges the account's refresh token for a new access token and
// persists the re-encrypted value before returning it. The stored access
// token is replaced in place; the account keeps exactly one current token.
func (m *TokenManager) Refresh(ctx context.Context, account *connection.ConnectedAccount) (string, error) {
	refreshToken, err := m.cipher.Decrypt(account.EncryptedRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt refresh token for account %d: %w", account.ID, err)
	}

	token, err := m.refresher.RefreshToken(ctx, refreshToken)
	if err != nil {
		return "", fmt.Errorf("token refresh failed for account %d: %w", account.ID, err)
	}

	encrypted, err := m.cipher.Encrypt(token.AccessToken)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt refreshed token: %w", err)
	}

	account.RotateAccessToken(encrypted, token.Expiry)
	if err := m.accounts.Update(ctx, account); err != nil {
		return "", fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	m.logger.Infow("access token refreshed", "account_id", account.ID)

	return token.AccessToken, nil
}

// DoWithRefresh runs call with the account's current access token. On
// ErrUnauthorized it refreshes once and re-runs the call exactly once; a
// second 401 or a failed refresh is terminal. All authenticated Business
// Profile call sites (review fetch, reply post, sync) go through here so the
// retry bound lives in one place.
func (m *TokenManager) DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error {
	token, err := m.AccessToken(account)
	if err != nil {
		return err
	}

	err = call(token)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	m.logger.Debugw("access token rejected, attempting refresh", "account_id", account.ID)

	newToken, err := m.Refresh(ctx, account)
	if err != nil {
		return err
	}

	return call(newToken)
}
