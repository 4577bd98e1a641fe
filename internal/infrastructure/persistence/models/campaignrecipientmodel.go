package models

import (
	"time"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

type CampaignRecipientModel struct {
	ID         uint   `gorm:"primarykey"`
	CampaignID uint   `gorm:"not null;index"`
	Contact    string `gorm:"not null;size:255"`
	Token      string `gorm:"uniqueIndex;not null;size:64"`
	Status     string `gorm:"not null;default:pending;size:20"`
	SentAt     *time.Time
	CreatedAt  time.Time
}

func (CampaignRecipientModel) TableName() string {
	return constants.TableCampaignRecipients
}
