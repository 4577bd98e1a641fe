package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/domain/business"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ListRulesCommand struct {
	UserID      uint
	BusinessSID string
}

type ListRulesResult struct {
	Rules []*automation.Rule
}

type ListRulesUseCase struct {
	businessRepo business.Repository
	ruleRepo     automation.Repository
	logger       logger.Interface
}

func NewListRulesUseCase(
	businessRepo business.Repository,
	ruleRepo automation.Repository,
	logger logger.Interface,
) *ListRulesUseCase {
	return &ListRulesUseCase{
		businessRepo: businessRepo,
		ruleRepo:     ruleRepo,
		logger:       logger,
	}
}

func (uc *ListRulesUseCase) Execute(ctx context.Context, cmd ListRulesCommand) (*ListRulesResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	rules, err := uc.ruleRepo.ListByBusinessID(ctx, biz.ID)
	if err != nil {
		return nil, err
	}

	return &ListRulesResult{Rules: rules}, nil
}
