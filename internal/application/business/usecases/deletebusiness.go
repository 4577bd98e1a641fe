package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type DeleteBusinessCommand struct {
	SID    string
	UserID uint
}

type DeleteBusinessUseCase struct {
	businessRepo business.Repository
	locationRepo connection.LocationRepository
	logger       logger.Interface
}

func NewDeleteBusinessUseCase(
	businessRepo business.Repository,
	locationRepo connection.LocationRepository,
	logger logger.Interface,
) *DeleteBusinessUseCase {
	return &DeleteBusinessUseCase{
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *DeleteBusinessUseCase) Execute(ctx context.Context, cmd DeleteBusinessCommand) error {
	entity, err := uc.businessRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return err
	}
	if entity.OwnerID != cmd.UserID {
		return apperrors.NewNotFoundError("business not found")
	}

	// drop the location link first so the sync worker stops picking it up
	if err := uc.locationRepo.DeleteByBusinessID(ctx, entity.ID); err != nil {
		return err
	}

	if err := uc.businessRepo.Delete(ctx, entity.ID); err != nil {
		return err
	}

	uc.logger.Infow("business deleted", "business_sid", entity.SID)
	return nil
}
