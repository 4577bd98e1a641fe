package usecases

import (
	"context"
	"time"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/domain/business"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type UpdateRuleCommand struct {
	UserID      uint
	BusinessSID string
	RuleSID     string
	Name        *string
	ActionParam *string
	Enabled     *bool
}

type UpdateRuleResult struct {
	Rule *automation.Rule
}

type UpdateRuleUseCase struct {
	businessRepo business.Repository
	ruleRepo     automation.Repository
	logger       logger.Interface
}

func NewUpdateRuleUseCase(
	businessRepo business.Repository,
	ruleRepo automation.Repository,
	logger logger.Interface,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		businessRepo: businessRepo,
		ruleRepo:     ruleRepo,
		logger:       logger,
	}
}

func (uc *UpdateRuleUseCase) Execute(ctx context.Context, cmd UpdateRuleCommand) (*UpdateRuleResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	rule, err := uc.ruleRepo.GetBySID(ctx, cmd.RuleSID)
	if err != nil {
		return nil, err
	}
	if rule.BusinessID != biz.ID {
		return nil, apperrors.NewNotFoundError("rule not found")
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, apperrors.NewValidationError("rule name cannot be empty")
		}
		rule.Name = *cmd.Name
	}
	if cmd.ActionParam != nil {
		if rule.Action == automation.ActionEmailAlert && *cmd.ActionParam == "" {
			return nil, apperrors.NewValidationError("alert email address is required")
		}
		rule.ActionParam = *cmd.ActionParam
	}
	if cmd.Enabled != nil {
		rule.Enabled = *cmd.Enabled
	}
	rule.UpdatedAt = time.Now()

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}

	uc.logger.Infow("automation rule updated", "rule_sid", rule.SID, "enabled", rule.Enabled)

	return &UpdateRuleResult{Rule: rule}, nil
}
