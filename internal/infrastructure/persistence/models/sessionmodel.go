package models

import (
	"time"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

type SessionModel struct {
	ID           uint   `gorm:"primarykey"`
	SessionID    string `gorm:"uniqueIndex;not null;size:64"`
	UserID       uint   `gorm:"not null;index"`
	RefreshToken string `gorm:"not null;size:512"`
	UserAgent    string `gorm:"size:255"`
	IPAddress    string `gorm:"size:45"`
	ExpiresAt    time.Time
	RevokedAt    *time.Time
	CreatedAt    time.Time
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
