// Package usecases implements the tenant administration operations.
package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ListBusinessesCommand struct {
	Offset int
	Limit  int
}

type ListBusinessesResult struct {
	Businesses []*business.Business
	Total      int64
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

// Execute lists every tenant regardless of owner. Admin-gated at the router.
func (uc *ListBusinessesUseCase) Execute(ctx context.Context, cmd ListBusinessesCommand) (*ListBusinessesResult, error) {
	businesses, total, err := uc.businessRepo.List(ctx, cmd.Offset, cmd.Limit)
	if err != nil {
		return nil, err
	}
	return &ListBusinessesResult{Businesses: businesses, Total: total}, nil
}
