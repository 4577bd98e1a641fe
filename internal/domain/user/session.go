package user

import (
	"context"
	"fmt"
	"time"
)

// Session tracks one refresh-token grant for a logged-in user.
type Session struct {
	ID           uint
	SessionID    string
	UserID       uint
	RefreshToken string
	UserAgent    string
	IPAddress    string
	ExpiresAt    time.Time
	RevokedAt    *time.Time
	CreatedAt    time.Time
}

func NewSession(sessionID string, userID uint, refreshToken string, expiresAt time.Time) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Session{
		SessionID:    sessionID,
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now(),
	}, nil
}

func (s *Session) IsValid() bool {
	return s.RevokedAt == nil && time.Now().Before(s.ExpiresAt)
}

func (s *Session) Revoke() {
	now := time.Now()
	s.RevokedAt = &now
}

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetBySessionID(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s *Session) error
	DeleteByUserID(ctx context.Context, userID uint) error
}
