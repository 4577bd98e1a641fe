// Package connection holds the OAuth grant and location link entities that
// tie a tenant to its external business listing.
package connection

import (
	"context"
	"fmt"
	"time"
)

// ProviderGoogle is the only review provider currently supported.
const ProviderGoogle = "google"

// ConnectedAccount stores one user's OAuth grant for an external review
// provider. Token fields hold ciphertext; decryption happens at the edge of
// the Google client, never in this package.
//
// Invariant: at most one current access token per account. A refresh
// replaces the stored token in place.
type ConnectedAccount struct {
	ID                    uint
	UserID                uint
	Provider              string
	ProviderAccountID     string
	EncryptedAccessToken  string
	EncryptedRefreshToken string
	TokenExpiry           time.Time
	ConnectedAt           time.Time
	UpdatedAt             time.Time
}

func NewConnectedAccount(userID uint, provider, providerAccountID, encAccess, encRefresh string, expiry time.Time) (*ConnectedAccount, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if providerAccountID == "" {
		return nil, fmt.Errorf("provider account ID is required")
	}
	if encAccess == "" || encRefresh == "" {
		return nil, fmt.Errorf("encrypted tokens are required")
	}

	now := time.Now()
	return &ConnectedAccount{
		UserID:                userID,
		Provider:              provider,
		ProviderAccountID:     providerAccountID,
		EncryptedAccessToken:  encAccess,
		EncryptedRefreshToken: encRefresh,
		TokenExpiry:           expiry,
		ConnectedAt:           now,
		UpdatedAt:             now,
	}, nil
}

// RotateAccessToken replaces the stored access token after a refresh.
func (a *ConnectedAccount) RotateAccessToken(encAccess string, expiry time.Time) {
	a.EncryptedAccessToken = encAccess
	a.TokenExpiry = expiry
	a.UpdatedAt = time.Now()
}

type AccountRepository interface {
	Create(ctx context.Context, a *ConnectedAccount) error
	GetByID(ctx context.Context, id uint) (*ConnectedAccount, error)
	GetByUserAndProvider(ctx context.Context, userID uint, provider string) (*ConnectedAccount, error)
	Update(ctx context.Context, a *ConnectedAccount) error
	// Delete removes the account and cascades to its connected locations.
	Delete(ctx context.Context, id uint) error
}
