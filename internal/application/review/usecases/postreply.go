package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type PostReplyCommand struct {
	UserID    uint
	ReviewID  uint
	ReplyText string
}

type PostReplyResult struct {
	Review *review.ExternalReview
}

// PostReplyUseCase publishes an owner reply to the provider and mirrors it
// into the local cache. The provider write happens first: local state is only
// touched once the reply is live.
type PostReplyUseCase struct {
	businessRepo business.Repository
	reviewRepo   review.Repository
	locationRepo connection.LocationRepository
	accountRepo  connection.AccountRepository
	replyClient  ReplyClient
	tokenRunner  TokenRunner
	analytics    AnalyticsCache
	logger       logger.Interface
}

func NewPostReplyUseCase(
	businessRepo business.Repository,
	reviewRepo review.Repository,
	locationRepo connection.LocationRepository,
	accountRepo connection.AccountRepository,
	replyClient ReplyClient,
	tokenRunner TokenRunner,
	analytics AnalyticsCache,
	logger logger.Interface,
) *PostReplyUseCase {
	return &PostReplyUseCase{
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		locationRepo: locationRepo,
		accountRepo:  accountRepo,
		replyClient:  replyClient,
		tokenRunner:  tokenRunner,
		analytics:    analytics,
		logger:       logger,
	}
}

func (uc *PostReplyUseCase) Execute(ctx context.Context, cmd PostReplyCommand) (*PostReplyResult, error) {
	if cmd.ReplyText == "" {
		return nil, apperrors.NewValidationError("reply text cannot be empty")
	}

	rev, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}

	biz, err := uc.businessRepo.GetByID(ctx, rev.BusinessID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("review not found")
	}

	location, err := uc.locationRepo.GetByBusinessID(ctx, biz.ID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewBadRequestError("business has no connected location")
		}
		return nil, err
	}

	account, err := uc.accountRepo.GetByID(ctx, location.AccountID)
	if err != nil {
		return nil, err
	}

	err = uc.tokenRunner.DoWithRefresh(ctx, account, func(accessToken string) error {
		return uc.replyClient.UpdateReply(ctx, accessToken, location.LocationName, rev.ExternalID, cmd.ReplyText)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to post reply: %w", err)
	}

	now := time.Now()
	if err := uc.reviewRepo.UpdateReply(ctx, rev.ID, cmd.ReplyText, now); err != nil {
		return nil, err
	}
	rev.MarkReplied(cmd.ReplyText, now)

	if err := uc.analytics.Invalidate(ctx, biz.SID); err != nil {
		uc.logger.Warnw("failed to invalidate analytics cache", "business_sid", biz.SID, "error", err)
	}

	uc.logger.Infow("reply posted",
		"review_id", rev.ID,
		"external_id", rev.ExternalID,
		"business_sid", biz.SID)

	return &PostReplyResult{Review: rev}, nil
}
