package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type GetStatsCommand struct{}

type GetStatsResult struct {
	Businesses         int64
	ConnectedLocations int
}

type GetStatsUseCase struct {
	businessRepo business.Repository
	locationRepo connection.LocationRepository
	logger       logger.Interface
}

func NewGetStatsUseCase(
	businessRepo business.Repository,
	locationRepo connection.LocationRepository,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context, _ GetStatsCommand) (*GetStatsResult, error) {
	_, total, err := uc.businessRepo.List(ctx, 0, 1)
	if err != nil {
		return nil, err
	}

	locations, err := uc.locationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &GetStatsResult{
		Businesses:         total,
		ConnectedLocations: len(locations),
	}, nil
}
