package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

// Evaluator runs a business's enabled rules against a newly synced review.
// It is invoked from the sync pipeline; individual rule failures are logged
// and skipped so one broken action never blocks the others.
type Evaluator struct {
	ruleRepo     automation.Repository
	businessRepo business.Repository
	locationRepo connection.LocationRepository
	accountRepo  connection.AccountRepository
	reviewRepo   review.Repository
	replyClient  ReplyClient
	tokenRunner  TokenRunner
	alertSender  AlertSender
	logger       logger.Interface
}

func NewEvaluator(
	ruleRepo automation.Repository,
	businessRepo business.Repository,
	locationRepo connection.LocationRepository,
	accountRepo connection.AccountRepository,
	reviewRepo review.Repository,
	replyClient ReplyClient,
	tokenRunner TokenRunner,
	alertSender AlertSender,
	logger logger.Interface,
) *Evaluator {
	return &Evaluator{
		ruleRepo:     ruleRepo,
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		accountRepo:  accountRepo,
		reviewRepo:   reviewRepo,
		replyClient:  replyClient,
		tokenRunner:  tokenRunner,
		alertSender:  alertSender,
		logger:       logger,
	}
}

// EvaluateNewReview matches every enabled rule against the review in order.
// An auto-reply fires at most once per review: once the review carries a
// reply, later auto-reply rules no longer match the intent.
func (e *Evaluator) EvaluateNewReview(ctx context.Context, businessID uint, rev *review.ExternalReview) error {
	rules, err := e.ruleRepo.ListByBusinessID(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to load automation rules: %w", err)
	}

	for _, rule := range rules {
		if !rule.Matches(rev) {
			continue
		}

		var actionErr error
		switch rule.Action {
		case automation.ActionAutoReply:
			if rev.Replied {
				continue
			}
			actionErr = e.autoReply(ctx, businessID, rev, rule.ActionParam)
		case automation.ActionEmailAlert:
			actionErr = e.emailAlert(ctx, businessID, rev, rule.ActionParam)
		}

		if actionErr != nil {
			e.logger.Warnw("automation action failed",
				"rule_sid", rule.SID,
				"action", rule.Action,
				"external_id", rev.ExternalID,
				"error", actionErr)
			continue
		}

		e.logger.Infow("automation action executed",
			"rule_sid", rule.SID,
			"action", rule.Action,
			"external_id", rev.ExternalID)
	}

	return nil
}

func (e *Evaluator) autoReply(ctx context.Context, businessID uint, rev *review.ExternalReview, template string) error {
	if template == "" {
		return fmt.Errorf("auto-reply rule has no reply template")
	}

	location, err := e.locationRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to load connected location: %w", err)
	}
	account, err := e.accountRepo.GetByID(ctx, location.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load connected account: %w", err)
	}

	err = e.tokenRunner.DoWithRefresh(ctx, account, func(accessToken string) error {
		return e.replyClient.UpdateReply(ctx, accessToken, location.LocationName, rev.ExternalID, template)
	})
	if err != nil {
		return fmt.Errorf("failed to post auto-reply: %w", err)
	}

	stored, err := e.reviewRepo.GetByExternalID(ctx, rev.ExternalID)
	if err != nil {
		return fmt.Errorf("failed to load review for reply persistence: %w", err)
	}

	now := time.Now()
	if err := e.reviewRepo.UpdateReply(ctx, stored.ID, template, now); err != nil {
		return fmt.Errorf("failed to persist auto-reply: %w", err)
	}

	rev.MarkReplied(template, now)
	return nil
}

func (e *Evaluator) emailAlert(ctx context.Context, businessID uint, rev *review.ExternalReview, to string) error {
	if to == "" {
		return fmt.Errorf("alert rule has no recipient address")
	}

	biz, err := e.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to load business: %w", err)
	}

	if err := e.alertSender.SendReviewAlert(to, biz.Name, rev.AuthorName, rev.Comment, rev.Rating); err != nil {
		return fmt.Errorf("failed to send review alert: %w", err)
	}
	return nil
}
