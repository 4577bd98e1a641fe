package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ListCampaignsCommand struct {
	UserID      uint
	BusinessSID string
}

type ListCampaignsResult struct {
	Campaigns []*campaign.Campaign
}

type ListCampaignsUseCase struct {
	businessRepo business.Repository
	campaignRepo campaign.Repository
	logger       logger.Interface
}

func NewListCampaignsUseCase(
	businessRepo business.Repository,
	campaignRepo campaign.Repository,
	logger logger.Interface,
) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{
		businessRepo: businessRepo,
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

func (uc *ListCampaignsUseCase) Execute(ctx context.Context, cmd ListCampaignsCommand) (*ListCampaignsResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	campaigns, err := uc.campaignRepo.ListByBusinessID(ctx, biz.ID)
	if err != nil {
		return nil, err
	}

	return &ListCampaignsResult{Campaigns: campaigns}, nil
}
