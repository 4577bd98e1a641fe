package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/domain/business"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type DeleteRuleCommand struct {
	UserID      uint
	BusinessSID string
	RuleSID     string
}

type DeleteRuleUseCase struct {
	businessRepo business.Repository
	ruleRepo     automation.Repository
	logger       logger.Interface
}

func NewDeleteRuleUseCase(
	businessRepo business.Repository,
	ruleRepo automation.Repository,
	logger logger.Interface,
) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		businessRepo: businessRepo,
		ruleRepo:     ruleRepo,
		logger:       logger,
	}
}

func (uc *DeleteRuleUseCase) Execute(ctx context.Context, cmd DeleteRuleCommand) error {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return err
	}
	if biz.OwnerID != cmd.UserID {
		return apperrors.NewNotFoundError("business not found")
	}

	rule, err := uc.ruleRepo.GetBySID(ctx, cmd.RuleSID)
	if err != nil {
		return err
	}
	if rule.BusinessID != biz.ID {
		return apperrors.NewNotFoundError("rule not found")
	}

	if err := uc.ruleRepo.Delete(ctx, rule.ID); err != nil {
		return err
	}

	uc.logger.Infow("automation rule deleted", "rule_sid", rule.SID, "business_sid", biz.SID)

	return nil
}
