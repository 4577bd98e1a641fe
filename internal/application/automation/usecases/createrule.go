package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/domain/business"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/id"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type CreateRuleCommand struct {
	UserID      uint
	BusinessSID string
	Name        string
	Condition   string
	Threshold   int
	Action      string
	ActionParam string
}

type CreateRuleResult struct {
	Rule *automation.Rule
}

type CreateRuleUseCase struct {
	businessRepo business.Repository
	ruleRepo     automation.Repository
	logger       logger.Interface
}

func NewCreateRuleUseCase(
	businessRepo business.Repository,
	ruleRepo automation.Repository,
	logger logger.Interface,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		businessRepo: businessRepo,
		ruleRepo:     ruleRepo,
		logger:       logger,
	}
}

func (uc *CreateRuleUseCase) Execute(ctx context.Context, cmd CreateRuleCommand) (*CreateRuleResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	if cmd.Action == automation.ActionEmailAlert && cmd.ActionParam == "" {
		return nil, apperrors.NewValidationError("alert email address is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixRule, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate rule ID: %w", err)
	}

	rule, err := automation.NewRule(sid, biz.ID, cmd.Name, cmd.Condition, cmd.Threshold, cmd.Action, cmd.ActionParam)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	uc.logger.Infow("automation rule created",
		"rule_sid", rule.SID,
		"business_sid", biz.SID,
		"action", rule.Action)

	return &CreateRuleResult{Rule: rule}, nil
}
