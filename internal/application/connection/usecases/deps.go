// Package usecases implements the provider connect flow: consent initiation,
// callback handling, location selection, and disconnect.
package usecases

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
)

// AccountInfo identifies the authorizing provider account.
type AccountInfo struct {
	ID    string
	Email string
}

// OAuthClient performs the provider consent and code exchange.
type OAuthClient interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	GetAccountInfo(ctx context.Context, accessToken string) (*AccountInfo, error)
}

// StateStore issues and validates single-use CSRF states.
type StateStore interface {
	Issue(ctx context.Context, userID uint) (string, error)
	Consume(ctx context.Context, state string) (uint, error)
}

// TokenCipher encrypts tokens before they reach storage.
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
}

// ProfileAPI lists the provider's accounts and locations.
type ProfileAPI interface {
	ListAccounts(ctx context.Context, accessToken string) ([]google.Account, error)
	ListLocations(ctx context.Context, accessToken, accountName string) ([]google.Location, error)
}

// TokenRunner executes an authenticated provider call with the managed
// refresh-on-unauthorized behavior.
type TokenRunner interface {
	DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error
}
