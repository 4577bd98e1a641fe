package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type SyncLocationCommand struct {
	Location *connection.ConnectedLocation
}

type SyncLocationResult struct {
	Processed int
	New       int
}

// SyncLocationUseCase reconciles one location's reviews into the local
// cache. It is the unit of isolation for the fan-out: a failure here never
// touches another location.
type SyncLocationUseCase struct {
	accountRepo  connection.AccountRepository
	businessRepo business.Repository
	reviewRepo   review.Repository
	fetcher      ReviewFetcher
	tokenRunner  TokenRunner
	evaluator    RuleEvaluator
	invalidator  AnalyticsInvalidator
	logger       logger.Interface
}

func NewSyncLocationUseCase(
	accountRepo connection.AccountRepository,
	businessRepo business.Repository,
	reviewRepo review.Repository,
	fetcher ReviewFetcher,
	tokenRunner TokenRunner,
	evaluator RuleEvaluator,
	invalidator AnalyticsInvalidator,
	logger logger.Interface,
) *SyncLocationUseCase {
	return &SyncLocationUseCase{
		accountRepo:  accountRepo,
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		fetcher:      fetcher,
		tokenRunner:  tokenRunner,
		evaluator:    evaluator,
		invalidator:  invalidator,
		logger:       logger,
	}
}

// Execute fetches the location's reviews and upserts them keyed by external
// ID. Reviews never seen before additionally run through the automation
// rules. The processed count reflects every upserted row, new or updated.
func (uc *SyncLocationUseCase) Execute(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
	loc := cmd.Location

	account, err := uc.accountRepo.GetByID(ctx, loc.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account for location %d: %w", loc.ID, err)
	}

	var fetched []google.Review
	err = uc.tokenRunner.DoWithRefresh(ctx, account, func(accessToken string) error {
		reviews, err := uc.fetcher.ListReviews(ctx, accessToken, loc.LocationName)
		if err != nil {
			return err
		}
		fetched = reviews
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for %s: %w", loc.LocationName, err)
	}

	result := &SyncLocationResult{}
	now := time.Now()

	for _, pr := range fetched {
		entity := mapProviderReview(pr, loc.BusinessID, now)

		_, err := uc.reviewRepo.GetByExternalID(ctx, entity.ExternalID)
		isNew := apperrors.IsNotFoundError(err)
		if err != nil && !isNew {
			return result, fmt.Errorf("failed to check review %s: %w", entity.ExternalID, err)
		}

		if err := uc.reviewRepo.Upsert(ctx, entity); err != nil {
			return result, err
		}
		result.Processed++

		if isNew {
			result.New++
			if err := uc.evaluator.EvaluateNewReview(ctx, loc.BusinessID, entity); err != nil {
				// automation must not poison the sync
				uc.logger.Warnw("automation evaluation failed",
					"external_id", entity.ExternalID,
					"error", err)
			}
		}
	}

	if result.Processed > 0 {
		uc.invalidateStats(ctx, loc.BusinessID)
	}

	uc.logger.Infow("location synced",
		"location_name", loc.LocationName,
		"business_id", loc.BusinessID,
		"processed", result.Processed,
		"new", result.New)

	return result, nil
}

func (uc *SyncLocationUseCase) invalidateStats(ctx context.Context, businessID uint) {
	biz, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		uc.logger.Warnw("failed to load business for cache invalidation", "business_id", businessID, "error", err)
		return
	}
	if err := uc.invalidator.Invalidate(ctx, biz.SID); err != nil {
		uc.logger.Warnw("failed to invalidate analytics cache", "business_sid", biz.SID, "error", err)
	}
}

// mapProviderReview converts the provider record to the local cache shape.
// Unrecognized star labels normalize to 0 on this path.
func mapProviderReview(pr google.Review, businessID uint, syncedAt time.Time) *review.ExternalReview {
	entity := &review.ExternalReview{
		ExternalID: pr.ReviewID,
		BusinessID: businessID,
		AuthorName: pr.Reviewer.DisplayName,
		Rating:     review.NormalizeStarRating(pr.StarRating),
		Comment:    pr.Comment,
		CreatedAt:  pr.CreateTime,
		SyncedAt:   syncedAt,
	}
	if pr.ReviewReply != nil && pr.ReviewReply.Comment != "" {
		replyAt := pr.ReviewReply.UpdateTime
		entity.MarkReplied(pr.ReviewReply.Comment, replyAt)
	}
	return entity
}
