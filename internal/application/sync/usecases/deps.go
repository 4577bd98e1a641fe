// Package usecases implements review synchronization: per-location
// reconciliation and the fan-out over all connected locations.
package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
)

// ReviewFetcher lists the provider's reviews for one location.
type ReviewFetcher interface {
	ListReviews(ctx context.Context, accessToken, locationName string) ([]google.Review, error)
}

// TokenRunner executes an authenticated provider call with the managed
// refresh-on-unauthorized behavior.
type TokenRunner interface {
	DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error
}

// RuleEvaluator reacts to reviews that were not seen before.
type RuleEvaluator interface {
	EvaluateNewReview(ctx context.Context, businessID uint, rev *review.ExternalReview) error
}

// AnalyticsInvalidator drops cached stats after a sync writes new rows.
type AnalyticsInvalidator interface {
	Invalidate(ctx context.Context, businessSID string) error
}

// SyncLock serializes sync runs across processes.
type SyncLock interface {
	Acquire(ctx context.Context, holder string) error
	Release(ctx context.Context, holder string) error
}
