package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ListBusinessesCommand struct {
	OwnerID uint
}

type ListBusinessesResult struct {
	Businesses []*business.Business
}

type ListBusinessesUseCase struct {
	businessRepo business.Repository
	logger       logger.Interface
}

func NewListBusinessesUseCase(businessRepo business.Repository, logger logger.Interface) *ListBusinessesUseCase {
	return &ListBusinessesUseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (uc *ListBusinessesUseCase) Execute(ctx context.Context, cmd ListBusinessesCommand) (*ListBusinessesResult, error) {
	entities, err := uc.businessRepo.ListByOwnerID(ctx, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	return &ListBusinessesResult{Businesses: entities}, nil
}
