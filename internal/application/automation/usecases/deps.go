// Package usecases implements automation rule management and the evaluation
// of rules against freshly synced reviews.
package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/connection"
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

// AlertSender delivers review alert notifications to business owners.
type AlertSender interface {
	SendReviewAlert(to, businessName, reviewerName, comment string, rating int) error
}
