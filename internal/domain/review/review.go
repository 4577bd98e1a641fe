// Package review defines the locally cached copy of externally authored
// reviews and their reconciliation contract.
package review

import (
	"context"
	"time"
)

// ExternalReview is a local cache of one provider-authored review. Rows are
// created and updated only by the reconciler; end users never write them
// directly, except for the local reply state set after a successful reply
// post.
type ExternalReview struct {
	ID         uint
	ExternalID string // provider review identifier, globally unique
	BusinessID uint
	AuthorName string
	Rating     int // 1..5, 0 when the provider label was unrecognized
	Comment    string
	ReplyText  string
	Replied    bool
	CreatedAt  time.Time // provider-side creation time
	RepliedAt  *time.Time
	SyncedAt   time.Time
}

// MarkReplied records a successfully posted reply.
func (r *ExternalReview) MarkReplied(text string, at time.Time) {
	r.ReplyText = text
	r.Replied = true
	r.RepliedAt = &at
}

// ListFilter narrows review queries.
type ListFilter struct {
	Rating  *int
	Replied *bool
	Offset  int
	Limit   int
}

// Stats aggregates review figures for the analytics dashboard.
type Stats struct {
	Total         int64
	Replied       int64
	AverageRating float64
	ByRating      map[int]int64
	PerMonth      map[string]int64 // "2026-01" -> count
}

type Repository interface {
	// Upsert inserts or updates a review keyed by ExternalID. Existing local
	// reply state is preserved when the incoming record carries none.
	Upsert(ctx context.Context, r *ExternalReview) error
	GetByID(ctx context.Context, id uint) (*ExternalReview, error)
	GetByExternalID(ctx context.Context, externalID string) (*ExternalReview, error)
	ListByBusinessID(ctx context.Context, businessID uint, filter ListFilter) ([]*ExternalReview, int64, error)
	UpdateReply(ctx context.Context, id uint, replyText string, repliedAt time.Time) error
	StatsByBusinessID(ctx context.Context, businessID uint) (*Stats, error)
}
