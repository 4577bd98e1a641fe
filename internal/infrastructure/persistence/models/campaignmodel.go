package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

type CampaignModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"uniqueIndex;not null;size:32"`
	BusinessID uint   `gorm:"not null;index"`
	Name       string `gorm:"not null;size:100"`
	Channel    string `gorm:"not null;size:20"`
	Template   string `gorm:"type:text"`
	Status     string `gorm:"not null;default:draft;size:20"`
	SentCount  uint   `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (CampaignModel) TableName() string {
	return constants.TableCampaigns
}
