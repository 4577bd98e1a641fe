package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/review"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ListReviewsCommand struct {
	UserID      uint
	BusinessSID string
	Rating      *int
	Replied     *bool
	Offset      int
	Limit       int
}

type ListReviewsResult struct {
	Reviews []*review.ExternalReview
	Total   int64
}

type ListReviewsUseCase struct {
	businessRepo business.Repository
	reviewRepo   review.Repository
	logger       logger.Interface
}

func NewListReviewsUseCase(
	businessRepo business.Repository,
	reviewRepo review.Repository,
	logger logger.Interface,
) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		logger:       logger,
	}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, cmd ListReviewsCommand) (*ListReviewsResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	if cmd.Rating != nil && (*cmd.Rating < 1 || *cmd.Rating > 5) {
		return nil, apperrors.NewValidationError("rating filter must be between 1 and 5")
	}

	reviews, total, err := uc.reviewRepo.ListByBusinessID(ctx, biz.ID, review.ListFilter{
		Rating:  cmd.Rating,
		Replied: cmd.Replied,
		Offset:  cmd.Offset,
		Limit:   cmd.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListReviewsResult{Reviews: reviews, Total: total}, nil
}
