package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func draftUseCase(tone string, rev *review.ExternalReview) *GenerateReplyDraftUseCase {
	return NewGenerateReplyDraftUseCase(
		&mockBusinessRepo{
			getByIDFn: func(ctx context.Context, id uint) (*business.Business, error) {
				return &business.Business{ID: id, OwnerID: 1, ReplyTone: tone}, nil
			},
		},
		&mockReviewRepo{
			getByIDFn: func(ctx context.Context, id uint) (*review.ExternalReview, error) {
				return rev, nil
			},
		},
		logger.NewLogger(),
	)
}

func TestGenerateReplyDraft_BandAndToneSelection(t *testing.T) {
	tests := []struct {
		name     string
		tone     string
		rating   int
		contains string
	}{
		{"low rating friendly", business.ToneFriendly, 1, "really sorry"},
		{"mid rating friendly", business.ToneFriendly, 3, "honest feedback"},
		{"high rating friendly", business.ToneFriendly, 5, "kind words"},
		{"low rating professional", business.ToneProfessional, 2, "take your feedback seriously"},
		{"high rating apologetic", business.ToneApologetic, 4, "glad your visit went well"},
		{"unrecognized rating falls to low band", business.ToneApologetic, 0, "sincerely apologize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := draftUseCase(tt.tone, &review.ExternalReview{ID: 1, BusinessID: 10, AuthorName: "Ada", Rating: tt.rating})
			result, err := uc.Execute(context.Background(), GenerateReplyDraftCommand{UserID: 1, ReviewID: 1})
			require.NoError(t, err)
			assert.Contains(t, result.Draft, tt.contains)
			assert.Contains(t, result.Draft, "Ada")
		})
	}
}

func TestGenerateReplyDraft_MissingAuthorNameFallsBack(t *testing.T) {
	uc := draftUseCase(business.ToneFriendly, &review.ExternalReview{ID: 1, BusinessID: 10, Rating: 5})
	result, err := uc.Execute(context.Background(), GenerateReplyDraftCommand{UserID: 1, ReviewID: 1})
	require.NoError(t, err)
	assert.Contains(t, result.Draft, "Hi there,")
}

func TestGenerateReplyDraft_UnknownToneUsesFriendly(t *testing.T) {
	uc := draftUseCase("sarcastic", &review.ExternalReview{ID: 1, BusinessID: 10, AuthorName: "Ada", Rating: 5})
	result, err := uc.Execute(context.Background(), GenerateReplyDraftCommand{UserID: 1, ReviewID: 1})
	require.NoError(t, err)
	assert.Contains(t, result.Draft, "kind words")
}
