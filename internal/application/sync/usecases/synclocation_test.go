package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func testLocation() *connection.ConnectedLocation {
	return &connection.ConnectedLocation{
		ID:           1,
		BusinessID:   10,
		AccountID:    5,
		LocationName: "accounts/123/locations/456",
		Title:        "Cafe Aurora",
	}
}

func syncFixtures(t *testing.T) (*mockReviewRepo, *mockInvalidator, func(fetched []google.Review, evaluator *mockEvaluator) *SyncLocationUseCase) {
	t.Helper()

	reviewRepo := &mockReviewRepo{}
	invalidator := &mockInvalidator{}

	build := func(fetched []google.Review, evaluator *mockEvaluator) *SyncLocationUseCase {
		if evaluator == nil {
			evaluator = &mockEvaluator{}
		}
		return NewSyncLocationUseCase(
			&mockAccountRepo{
				getByIDFn: func(ctx context.Context, id uint) (*connection.ConnectedAccount, error) {
					return &connection.ConnectedAccount{ID: id, Provider: connection.ProviderGoogle}, nil
				},
			},
			&mockBusinessRepo{
				getByIDFn: func(ctx context.Context, id uint) (*business.Business, error) {
					return &business.Business{ID: id, SID: "biz_abc123"}, nil
				},
			},
			reviewRepo,
			&mockFetcher{
				listReviewsFn: func(ctx context.Context, accessToken, locationName string) ([]google.Review, error) {
					return fetched, nil
				},
			},
			&mockTokenRunner{},
			evaluator,
			invalidator,
			logger.NewLogger(),
		)
	}

	return reviewRepo, invalidator, build
}

func TestSyncLocation_NewReviewIsUpsertedAndEvaluated(t *testing.T) {
	reviewRepo, invalidator, build := syncFixtures(t)

	var upserted []*review.ExternalReview
	reviewRepo.upsertFn = func(ctx context.Context, r *review.ExternalReview) error {
		upserted = append(upserted, r)
		return nil
	}
	reviewRepo.getByExternalIDFn = func(ctx context.Context, externalID string) (*review.ExternalReview, error) {
		return nil, apperrors.NewNotFoundError("review not found")
	}

	var evaluated []string
	evaluator := &mockEvaluator{
		evaluateFn: func(ctx context.Context, businessID uint, rev *review.ExternalReview) error {
			assert.Equal(t, uint(10), businessID)
			evaluated = append(evaluated, rev.ExternalID)
			return nil
		},
	}

	uc := build([]google.Review{
		{
			ReviewID:   "rev-1",
			Reviewer:   google.Reviewer{DisplayName: "Ada"},
			StarRating: "FIVE",
			Comment:    "lovely espresso",
			CreateTime: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		},
	}, evaluator)

	result, err := uc.Execute(context.Background(), SyncLocationCommand{Location: testLocation()})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.New)
	require.Len(t, upserted, 1)
	assert.Equal(t, "rev-1", upserted[0].ExternalID)
	assert.Equal(t, uint(10), upserted[0].BusinessID)
	assert.Equal(t, 5, upserted[0].Rating)
	assert.Equal(t, []string{"rev-1"}, evaluated)
	assert.Equal(t, []string{"biz_abc123"}, invalidator.invalidated)
}

func TestSyncLocation_KnownReviewIsNotEvaluated(t *testing.T) {
	reviewRepo, _, build := syncFixtures(t)

	reviewRepo.upsertFn = func(ctx context.Context, r *review.ExternalReview) error { return nil }
	reviewRepo.getByExternalIDFn = func(ctx context.Context, externalID string) (*review.ExternalReview, error) {
		return &review.ExternalReview{ID: 42, ExternalID: externalID}, nil
	}

	evaluator := &mockEvaluator{
		evaluateFn: func(ctx context.Context, businessID uint, rev *review.ExternalReview) error {
			t.Fatalf("evaluator must not run for already-seen review %s", rev.ExternalID)
			return nil
		},
	}

	uc := build([]google.Review{
		{ReviewID: "rev-1", StarRating: "THREE", CreateTime: time.Now()},
	}, evaluator)

	result, err := uc.Execute(context.Background(), SyncLocationCommand{Location: testLocation()})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.New)
}

func TestSyncLocation_ProviderReplyMapsThrough(t *testing.T) {
	reviewRepo, _, build := syncFixtures(t)

	var upserted *review.ExternalReview
	reviewRepo.upsertFn = func(ctx context.Context, r *review.ExternalReview) error {
		upserted = r
		return nil
	}
	reviewRepo.getByExternalIDFn = func(ctx context.Context, externalID string) (*review.ExternalReview, error) {
		return nil, apperrors.NewNotFoundError("review not found")
	}

	repliedAt := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	uc := build([]google.Review{
		{
			ReviewID:   "rev-2",
			StarRating: "ONE",
			Comment:    "cold soup",
			CreateTime: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			ReviewReply: &google.ReviewReply{
				Comment:    "sorry, on the house next time",
				UpdateTime: repliedAt,
			},
		},
	}, nil)

	_, err := uc.Execute(context.Background(), SyncLocationCommand{Location: testLocation()})
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.True(t, upserted.Replied)
	assert.Equal(t, "sorry, on the house next time", upserted.ReplyText)
	require.NotNil(t, upserted.RepliedAt)
	assert.Equal(t, repliedAt, *upserted.RepliedAt)
	assert.Equal(t, 1, upserted.Rating)
}

func TestSyncLocation_UnrecognizedStarRatingBecomesZero(t *testing.T) {
	reviewRepo, _, build := syncFixtures(t)

	var upserted *review.ExternalReview
	reviewRepo.upsertFn = func(ctx context.Context, r *review.ExternalReview) error {
		upserted = r
		return nil
	}
	reviewRepo.getByExternalIDFn = func(ctx context.Context, externalID string) (*review.ExternalReview, error) {
		return nil, apperrors.NewNotFoundError("review not found")
	}

	uc := build([]google.Review{
		{ReviewID: "rev-3", StarRating: "STAR_RATING_UNSPECIFIED", CreateTime: time.Now()},
	}, nil)

	_, err := uc.Execute(context.Background(), SyncLocationCommand{Location: testLocation()})
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.Equal(t, 0, upserted.Rating)
}

func TestSyncLocation_FetchErrorFailsTheLocation(t *testing.T) {
	_, invalidator, build := syncFixtures(t)

	uc := build(nil, nil)
	uc.fetcher = &mockFetcher{
		listReviewsFn: func(ctx context.Context, accessToken, locationName string) ([]google.Review, error) {
			return nil, errors.New("connection reset")
		},
	}

	_, err := uc.Execute(context.Background(), SyncLocationCommand{Location: testLocation()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch reviews")
	assert.Empty(t, invalidator.invalidated)
}

func TestSyncLocation_EvaluatorFailureDoesNotFailSync(t *testing.T) {
	reviewRepo, _, build := syncFixtures(t)

	reviewRepo.upsertFn = func(ctx context.Context, r *review.ExternalReview) error { return nil }
	reviewRepo.getByExternalIDFn = func(ctx context.Context, externalID string) (*review.ExternalReview, error) {
		return nil, apperrors.NewNotFoundError("review not found")
	}

	evaluator := &mockEvaluator{
		evaluateFn: func(ctx context.Context, businessID uint, rev *review.ExternalReview) error {
			return errors.New("smtp unavailable")
		},
	}

	uc := build([]google.Review{
		{ReviewID: "rev-4", StarRating: "TWO", CreateTime: time.Now()},
	}, evaluator)

	result, err := uc.Execute(context.Background(), SyncLocationCommand{Location: testLocation()})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.New)
}
