package models

import (
	"time"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

// ConnectedAccountModel stores ciphertext token columns only. Plaintext
// tokens never reach the database.
type ConnectedAccountModel struct {
	ID                    uint   `gorm:"primarykey"`
	UserID                uint   `gorm:"not null;index:idx_accounts_user_provider,unique"`
	Provider              string `gorm:"not null;size:20;index:idx_accounts_user_provider,unique"`
	ProviderAccountID     string `gorm:"not null;size:255"`
	EncryptedAccessToken  string `gorm:"not null;type:text"`
	EncryptedRefreshToken string `gorm:"not null;type:text"`
	TokenExpiry           time.Time
	ConnectedAt           time.Time
	UpdatedAt             time.Time
}

func (ConnectedAccountModel) TableName() string {
	return constants.TableConnectedAccounts
}
