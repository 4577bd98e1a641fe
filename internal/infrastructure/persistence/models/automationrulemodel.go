package models

import (
	"time"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

type AutomationRuleModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"uniqueIndex;not null;size:32"`
	BusinessID  uint   `gorm:"not null;index"`
	Name        string `gorm:"not null;size:100"`
	Trigger     string `gorm:"not null;size:30;column:trigger_on"`
	Condition   string `gorm:"not null;size:30"`
	Threshold   int    `gorm:"not null;default:0"`
	Action      string `gorm:"not null;size:30"`
	ActionParam string `gorm:"type:text"`
	Enabled     bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AutomationRuleModel) TableName() string {
	return constants.TableAutomationRules
}
