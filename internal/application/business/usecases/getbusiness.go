package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type GetBusinessCommand struct {
	SID    string
	UserID uint
}

type GetBusinessResult struct {
	Business *business.Business
}

type GetBusinessUseCase struct {
	businessRepo business.Repository
	logger       logger.Interface
}

func NewGetBusinessUseCase(businessRepo business.Repository, logger logger.Interface) *GetBusinessUseCase {
	return &GetBusinessUseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (uc *GetBusinessUseCase) Execute(ctx context.Context, cmd GetBusinessCommand) (*GetBusinessResult, error) {
	entity, err := uc.businessRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	// a tenant can only see its own businesses
	if entity.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	return &GetBusinessResult{Business: entity}, nil
}
