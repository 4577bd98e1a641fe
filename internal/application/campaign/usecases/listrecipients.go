package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ListRecipientsCommand struct {
	UserID      uint
	BusinessSID string
	CampaignSID string
}

type ListRecipientsResult struct {
	Recipients []*campaign.Recipient
}

type ListRecipientsUseCase struct {
	businessRepo business.Repository
	campaignRepo campaign.Repository
	logger       logger.Interface
}

func NewListRecipientsUseCase(
	businessRepo business.Repository,
	campaignRepo campaign.Repository,
	logger logger.Interface,
) *ListRecipientsUseCase {
	return &ListRecipientsUseCase{
		businessRepo: businessRepo,
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

func (uc *ListRecipientsUseCase) Execute(ctx context.Context, cmd ListRecipientsCommand) (*ListRecipientsResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	cmp, err := uc.campaignRepo.GetBySID(ctx, cmd.CampaignSID)
	if err != nil {
		return nil, err
	}
	if cmp.BusinessID != biz.ID {
		return nil, apperrors.NewNotFoundError("campaign not found")
	}

	recipients, err := uc.campaignRepo.ListRecipients(ctx, cmp.ID)
	if err != nil {
		return nil, err
	}

	return &ListRecipientsResult{Recipients: recipients}, nil
}
