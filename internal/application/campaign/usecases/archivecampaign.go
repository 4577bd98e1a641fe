package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ArchiveCampaignCommand struct {
	UserID      uint
	BusinessSID string
	CampaignSID string
}

type ArchiveCampaignUseCase struct {
	businessRepo business.Repository
	campaignRepo campaign.Repository
	logger       logger.Interface
}

func NewArchiveCampaignUseCase(
	businessRepo business.Repository,
	campaignRepo campaign.Repository,
	logger logger.Interface,
) *ArchiveCampaignUseCase {
	return &ArchiveCampaignUseCase{
		businessRepo: businessRepo,
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

func (uc *ArchiveCampaignUseCase) Execute(ctx context.Context, cmd ArchiveCampaignCommand) error {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return err
	}
	if biz.OwnerID != cmd.UserID {
		return apperrors.NewNotFoundError("business not found")
	}

	cmp, err := uc.campaignRepo.GetBySID(ctx, cmd.CampaignSID)
	if err != nil {
		return err
	}
	if cmp.BusinessID != biz.ID {
		return apperrors.NewNotFoundError("campaign not found")
	}

	cmp.Archive()
	if err := uc.campaignRepo.Update(ctx, cmp); err != nil {
		return err
	}

	uc.logger.Infow("campaign archived", "campaign_sid", cmp.SID)

	return nil
}
