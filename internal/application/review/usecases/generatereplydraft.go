package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/review"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

// Rating bands for draft selection.
const (
	bandLow  = "low"  // 1-2 stars (and unrecognized ratings)
	bandMid  = "mid"  // 3 stars
	bandHigh = "high" // 4-5 stars
)

// draftTemplates maps tone -> band -> reply template. %s is the reviewer's
// name, falling back to "there" when the provider omitted it.
var draftTemplates = map[string]map[string]string{
	business.ToneFriendly: {
		bandLow:  "Hi %s, we're really sorry your visit fell short. We'd love a chance to make it right — please reach out to us directly!",
		bandMid:  "Hi %s, thanks for the honest feedback! We're always working to do better and hope to see you again soon.",
		bandHigh: "Hi %s, thank you so much for the kind words! We can't wait to welcome you back.",
	},
	business.ToneProfessional: {
		bandLow:  "Dear %s, thank you for bringing this to our attention. We take your feedback seriously and will address it with our team.",
		bandMid:  "Dear %s, we appreciate your balanced feedback and will use it to improve our service.",
		bandHigh: "Dear %s, thank you for your positive review. We look forward to serving you again.",
	},
	business.ToneApologetic: {
		bandLow:  "Dear %s, we sincerely apologize for your experience. This is not the standard we hold ourselves to, and we would welcome the opportunity to make amends.",
		bandMid:  "Dear %s, we're sorry we didn't fully meet your expectations and appreciate you letting us know.",
		bandHigh: "Dear %s, thank you for your review — we're glad your visit went well and sorry for any small shortcomings along the way.",
	},
}

type GenerateReplyDraftCommand struct {
	UserID   uint
	ReviewID uint
}

type GenerateReplyDraftResult struct {
	Draft string
}

type GenerateReplyDraftUseCase struct {
	businessRepo business.Repository
	reviewRepo   review.Repository
	logger       logger.Interface
}

func NewGenerateReplyDraftUseCase(
	businessRepo business.Repository,
	reviewRepo review.Repository,
	logger logger.Interface,
) *GenerateReplyDraftUseCase {
	return &GenerateReplyDraftUseCase{
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		logger:       logger,
	}
}

// Execute picks a reply template by the review's rating band and the
// business's configured tone.
func (uc *GenerateReplyDraftUseCase) Execute(ctx context.Context, cmd GenerateReplyDraftCommand) (*GenerateReplyDraftResult, error) {
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

	tone := biz.ReplyTone
	templates, ok := draftTemplates[tone]
	if !ok {
		templates = draftTemplates[business.ToneFriendly]
	}

	name := rev.AuthorName
	if name == "" {
		name = "there"
	}

	draft := fmt.Sprintf(templates[ratingBand(rev.Rating)], name)

	return &GenerateReplyDraftResult{Draft: draft}, nil
}

func ratingBand(rating int) string {
	switch {
	case rating >= 4:
		return bandHigh
	case rating == 3:
		return bandMid
	default:
		return bandLow
	}
}
