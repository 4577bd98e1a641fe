package models

import (
	"time"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

type ConnectedLocationModel struct {
	ID           uint   `gorm:"primarykey"`
	BusinessID   uint   `gorm:"not null;uniqueIndex"`
	AccountID    uint   `gorm:"not null;index"`
	LocationName string `gorm:"not null;size:255"`
	Title        string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ConnectedLocationModel) TableName() string {
	return constants.TableConnectedLocations
}
