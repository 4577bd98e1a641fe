package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/review"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type GetAnalyticsCommand struct {
	UserID      uint
	BusinessSID string
}

type GetAnalyticsResult struct {
	Stats *review.Stats
}

type GetAnalyticsUseCase struct {
	businessRepo business.Repository
	reviewRepo   review.Repository
	analytics    AnalyticsCache
	logger       logger.Interface
}

func NewGetAnalyticsUseCase(
	businessRepo business.Repository,
	reviewRepo review.Repository,
	analytics AnalyticsCache,
	logger logger.Interface,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		analytics:    analytics,
		logger:       logger,
	}
}

// Execute serves the stats snapshot from cache when available, otherwise
// recomputes and caches it. A cache read failure falls through to the
// database rather than failing the request.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, cmd GetAnalyticsCommand) (*GetAnalyticsResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	cached, err := uc.analytics.Get(ctx, biz.SID)
	if err != nil {
		uc.logger.Warnw("analytics cache read failed", "business_sid", biz.SID, "error", err)
	}
	if cached != nil {
		return &GetAnalyticsResult{Stats: cached}, nil
	}

	stats, err := uc.reviewRepo.StatsByBusinessID(ctx, biz.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.analytics.Set(ctx, biz.SID, stats); err != nil {
		uc.logger.Warnw("analytics cache write failed", "business_sid", biz.SID, "error", err)
	}

	return &GetAnalyticsResult{Stats: stats}, nil
}
