// Package models holds the GORM persistence models. They are the
// anti-corruption layer between the domain entities and the database schema.
package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	Status       string `gorm:"not null;default:active;size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = constants.UserStatusActive
	}
	return nil
}
