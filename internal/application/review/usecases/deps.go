// Package usecases implements the review-facing operations: listing the
// local review cache, drafting and posting owner replies, and the analytics
// snapshot.
package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
)

// ReplyClient posts owner replies to the review provider.
type ReplyClient interface {
	UpdateReply(ctx context.Context, accessToken, locationName, reviewID, comment string) error
}

// TokenRunner executes a provider call with the account's access token,
// refreshing it once on an auth failure.
type TokenRunner interface {
	DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error
}

// AnalyticsCache is the per-business stats snapshot store. Get returns
// (nil, nil) on a miss.
type AnalyticsCache interface {
	Get(ctx context.Context, businessSID string) (*review.Stats, error)
	Set(ctx context.Context, businessSID string, stats *review.Stats) error
	Invalidate(ctx context.Context, businessSID string) error
}
