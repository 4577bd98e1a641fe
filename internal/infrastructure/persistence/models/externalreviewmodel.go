package models

import (
	"time"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

// ExternalReviewModel caches provider-authored reviews. ExternalID is the
// upsert key; a re-synced review updates its existing row instead of
// inserting a duplicate.
type ExternalReviewModel struct {
	ID         uint      `gorm:"primarykey"`
	ExternalID string    `gorm:"uniqueIndex;not null;size:255"`
	BusinessID uint      `gorm:"not null;index:idx_reviews_business_rating"`
	AuthorName string    `gorm:"size:255"`
	Rating     int       `gorm:"not null;index:idx_reviews_business_rating"`
	Comment    string    `gorm:"type:text"`
	ReplyText  string    `gorm:"type:text"`
	Replied    bool      `gorm:"not null;default:false;index"`
	CreatedAt  time.Time `gorm:"index"`
	RepliedAt  *time.Time
	SyncedAt   time.Time
}

func (ExternalReviewModel) TableName() string {
	return constants.TableExternalReviews
}
