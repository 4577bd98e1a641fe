// Package campaign defines review-request campaigns and their recipients.
package campaign

import (
	"context"
	"fmt"
	"time"
)

// Channel values for outbound review requests.
const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelQR       = "qr"
)

// Status values.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Campaign is one review-request campaign for a business. The message
// template is markdown; rendering and sanitization happen at send time.
type Campaign struct {
	ID         uint
	SID        string // public short ID, "cmp_" prefixed
	BusinessID uint
	Name       string
	Channel    string
	Template   string
	Status     string
	SentCount  uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewCampaign(sid string, businessID uint, name, channel, template string) (*Campaign, error) {
	if sid == "" {
		return nil, fmt.Errorf("campaign SID is required")
	}
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	switch channel {
	case ChannelEmail, ChannelSMS, ChannelWhatsApp, ChannelQR:
	default:
		return nil, fmt.Errorf("unknown channel: %s", channel)
	}

	now := time.Now()
	return &Campaign{
		SID:        sid,
		BusinessID: businessID,
		Name:       name,
		Channel:    channel,
		Template:   template,
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (c *Campaign) Activate() {
	c.Status = StatusActive
	c.UpdatedAt = time.Now()
}

func (c *Campaign) Archive() {
	c.Status = StatusArchived
	c.UpdatedAt = time.Now()
}

func (c *Campaign) RecordSent(n uint) {
	c.SentCount += n
	c.UpdatedAt = time.Now()
}

// Recipient is one contact targeted by a campaign. Token individualizes the
// review link so opens can be attributed.
type Recipient struct {
	ID         uint
	CampaignID uint
	Contact    string // email address or phone number depending on channel
	Token      string
	Status     string // pending | sent | failed
	SentAt     *time.Time
	CreatedAt  time.Time
}

// Recipient status values.
const (
	RecipientPending = "pending"
	RecipientSent    = "sent"
	RecipientFailed  = "failed"
)

type Repository interface {
	Create(ctx context.Context, c *Campaign) error
	GetBySID(ctx context.Context, sid string) (*Campaign, error)
	ListByBusinessID(ctx context.Context, businessID uint) ([]*Campaign, error)
	Update(ctx context.Context, c *Campaign) error
	Delete(ctx context.Context, id uint) error

	AddRecipients(ctx context.Context, campaignID uint, recipients []*Recipient) error
	ListRecipients(ctx context.Context, campaignID uint) ([]*Recipient, error)
	UpdateRecipient(ctx context.Context, r *Recipient) error
}
