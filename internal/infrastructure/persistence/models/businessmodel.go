package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

type BusinessModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"uniqueIndex;not null;size:32"`
	OwnerID    uint   `gorm:"not null;index"`
	Name       string `gorm:"not null;size:255"`
	PlaceID    string `gorm:"size:255;index"`
	Address    string `gorm:"size:500"`
	Phone      string `gorm:"size:32"`
	ReviewLink string `gorm:"size:500"`
	ReplyTone  string `gorm:"not null;default:friendly;size:20"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (BusinessModel) TableName() string {
	return constants.TableBusinesses
}
