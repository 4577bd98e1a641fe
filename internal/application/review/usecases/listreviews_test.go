package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/review"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func TestListReviews_PassesFilterThrough(t *testing.T) {
	var gotFilter review.ListFilter
	reviewRepo := &mockReviewRepo{
		listByBusinessIDFn: func(ctx context.Context, businessID uint, filter review.ListFilter) ([]*review.ExternalReview, int64, error) {
			assert.Equal(t, uint(10), businessID)
			gotFilter = filter
			return []*review.ExternalReview{{ID: 1}, {ID: 2}}, 2, nil
		},
	}

	uc := NewListReviewsUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 10, SID: sid, OwnerID: 1}, nil
			},
		},
		reviewRepo,
		logger.NewLogger(),
	)

	rating := 5
	replied := false
	result, err := uc.Execute(context.Background(), ListReviewsCommand{
		UserID:      1,
		BusinessSID: "biz_abc123",
		Rating:      &rating,
		Replied:     &replied,
		Offset:      20,
		Limit:       10,
	})
	require.NoError(t, err)

	assert.Len(t, result.Reviews, 2)
	assert.Equal(t, int64(2), result.Total)
	require.NotNil(t, gotFilter.Rating)
	assert.Equal(t, 5, *gotFilter.Rating)
	require.NotNil(t, gotFilter.Replied)
	assert.False(t, *gotFilter.Replied)
	assert.Equal(t, 20, gotFilter.Offset)
	assert.Equal(t, 10, gotFilter.Limit)
}

func TestListReviews_RatingFilterOutOfRangeRejected(t *testing.T) {
	uc := NewListReviewsUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 10, SID: sid, OwnerID: 1}, nil
			},
		},
		&mockReviewRepo{},
		logger.NewLogger(),
	)

	rating := 6
	_, err := uc.Execute(context.Background(), ListReviewsCommand{
		UserID:      1,
		BusinessSID: "biz_abc123",
		Rating:      &rating,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListReviews_OtherOwnersBusinessIsHidden(t *testing.T) {
	uc := NewListReviewsUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 10, SID: sid, OwnerID: 99}, nil
			},
		},
		&mockReviewRepo{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), ListReviewsCommand{UserID: 1, BusinessSID: "biz_abc123"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
