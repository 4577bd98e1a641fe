// Package business defines the tenant entity managed by the dashboard.
package business

import (
	"context"
	"fmt"
	"time"
)

// Reply tone presets used when drafting review replies.
const (
	ToneFriendly     = "friendly"
	ToneProfessional = "professional"
	ToneApologetic   = "apologetic"
)

// Business is one tenant's managed business entity.
type Business struct {
	ID         uint
	SID        string // public short ID, "biz_" prefixed
	OwnerID    uint
	Name       string
	PlaceID    string // Google Places identifier, optional until connected
	Address    string
	Phone      string
	ReviewLink string // public URL sent to customers in review requests
	ReplyTone  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBusiness(sid string, ownerID uint, name string) (*Business, error) {
	if sid == "" {
		return nil, fmt.Errorf("business SID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("business name is required")
	}

	now := time.Now()
	return &Business{
		SID:       sid,
		OwnerID:   ownerID,
		Name:      name,
		ReplyTone: ToneFriendly,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (b *Business) SetReplyTone(tone string) error {
	switch tone {
	case ToneFriendly, ToneProfessional, ToneApologetic:
		b.ReplyTone = tone
		b.UpdatedAt = time.Now()
		return nil
	default:
		return fmt.Errorf("unknown reply tone: %s", tone)
	}
}

type Repository interface {
	Create(ctx context.Context, b *Business) error
	GetByID(ctx context.Context, id uint) (*Business, error)
	GetBySID(ctx context.Context, sid string) (*Business, error)
	ListByOwnerID(ctx context.Context, ownerID uint) ([]*Business, error)
	List(ctx context.Context, offset, limit int) ([]*Business, int64, error)
	Update(ctx context.Context, b *Business) error
	Delete(ctx context.Context, id uint) error
}
