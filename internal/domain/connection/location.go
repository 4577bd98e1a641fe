package connection

import (
	"context"
	"fmt"
	"time"
)

// ConnectedLocation links one business to exactly one external location under
// a ConnectedAccount. Upserts are keyed by business ID: re-selecting a
// location replaces the previous link.
type ConnectedLocation struct {
	ID           uint
	BusinessID   uint
	AccountID    uint
	LocationName string // provider resource name, e.g. "accounts/123/locations/456"
	Title        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewConnectedLocation(businessID, accountID uint, locationName, title string) (*ConnectedLocation, error) {
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if locationName == "" {
		return nil, fmt.Errorf("location name is required")
	}

	now := time.Now()
	return &ConnectedLocation{
		BusinessID:   businessID,
		AccountID:    accountID,
		LocationName: locationName,
		Title:        title,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

type LocationRepository interface {
	// Upsert inserts or replaces the link for the location's business.
	Upsert(ctx context.Context, l *ConnectedLocation) error
	GetByBusinessID(ctx context.Context, businessID uint) (*ConnectedLocation, error)
	ListAll(ctx context.Context) ([]*ConnectedLocation, error)
	DeleteByBusinessID(ctx context.Context, businessID uint) error
	DeleteByAccountID(ctx context.Context, accountID uint) error
}
