package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type AddRecipientsCommand struct {
	UserID      uint
	BusinessSID string
	CampaignSID string
	Contacts    []string
}

type AddRecipientsResult struct {
	Recipients []*campaign.Recipient
}

type AddRecipientsUseCase struct {
	businessRepo business.Repository
	campaignRepo campaign.Repository
	logger       logger.Interface
}

func NewAddRecipientsUseCase(
	businessRepo business.Repository,
	campaignRepo campaign.Repository,
	logger logger.Interface,
) *AddRecipientsUseCase {
	return &AddRecipientsUseCase{
		businessRepo: businessRepo,
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

// Execute registers contacts as pending recipients. Each recipient gets its
// own uuid token so review-link opens can be attributed.
func (uc *AddRecipientsUseCase) Execute(ctx context.Context, cmd AddRecipientsCommand) (*AddRecipientsResult, error) {
	if len(cmd.Contacts) == 0 {
		return nil, apperrors.NewValidationError("at least one contact is required")
	}

	cmp, err := uc.ownedCampaign(ctx, cmd.UserID, cmd.BusinessSID, cmd.CampaignSID)
	if err != nil {
		return nil, err
	}
	if cmp.Status == campaign.StatusArchived {
		return nil, apperrors.NewBadRequestError("campaign is archived")
	}

	now := time.Now()
	recipients := make([]*campaign.Recipient, 0, len(cmd.Contacts))
	for _, contact := range cmd.Contacts {
		if contact == "" {
			return nil, apperrors.NewValidationError("contact cannot be empty")
		}
		recipients = append(recipients, &campaign.Recipient{
			CampaignID: cmp.ID,
			Contact:    contact,
			Token:      uuid.NewString(),
			Status:     campaign.RecipientPending,
			CreatedAt:  now,
		})
	}

	if err := uc.campaignRepo.AddRecipients(ctx, cmp.ID, recipients); err != nil {
		return nil, err
	}

	uc.logger.Infow("recipients added",
		"campaign_sid", cmp.SID,
		"count", len(recipients))

	return &AddRecipientsResult{Recipients: recipients}, nil
}

func (uc *AddRecipientsUseCase) ownedCampaign(ctx context.Context, userID uint, businessSID, campaignSID string) (*campaign.Campaign, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, businessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != userID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	cmp, err := uc.campaignRepo.GetBySID(ctx, campaignSID)
	if err != nil {
		return nil, err
	}
	if cmp.BusinessID != biz.ID {
		return nil, apperrors.NewNotFoundError("campaign not found")
	}
	return cmp, nil
}
