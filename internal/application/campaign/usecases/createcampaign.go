package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/campaign"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/id"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type CreateCampaignCommand struct {
	UserID      uint
	BusinessSID string
	Name        string
	Channel     string
	Template    string
}

type CreateCampaignResult struct {
	Campaign *campaign.Campaign
}

type CreateCampaignUseCase struct {
	businessRepo business.Repository
	campaignRepo campaign.Repository
	logger       logger.Interface
}

func NewCreateCampaignUseCase(
	businessRepo business.Repository,
	campaignRepo campaign.Repository,
	logger logger.Interface,
) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{
		businessRepo: businessRepo,
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (*CreateCampaignResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	if biz.ReviewLink == "" {
		return nil, apperrors.NewBadRequestError("business has no review link configured")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixCampaign, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaign ID: %w", err)
	}

	entity, err := campaign.NewCampaign(sid, biz.ID, cmd.Name, cmd.Channel, cmd.Template)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.campaignRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("campaign created",
		"campaign_sid", entity.SID,
		"business_sid", biz.SID,
		"channel", entity.Channel)

	return &CreateCampaignResult{Campaign: entity}, nil
}
