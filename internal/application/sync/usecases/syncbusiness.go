package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type SyncBusinessCommand struct {
	UserID      uint
	BusinessSID string
}

// SyncBusinessUseCase runs one manual reconciliation pass for a single
// business's connected location, outside the scheduled run.
type SyncBusinessUseCase struct {
	businessRepo business.Repository
	locationRepo connection.LocationRepository
	syncer       LocationSyncer
	logger       logger.Interface
}

func NewSyncBusinessUseCase(
	businessRepo business.Repository,
	locationRepo connection.LocationRepository,
	syncer LocationSyncer,
	logger logger.Interface,
) *SyncBusinessUseCase {
	return &SyncBusinessUseCase{
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		syncer:       syncer,
		logger:       logger,
	}
}

func (uc *SyncBusinessUseCase) Execute(ctx context.Context, cmd SyncBusinessCommand) (*SyncLocationResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	location, err := uc.locationRepo.GetByBusinessID(ctx, biz.ID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewBadRequestError("business has no connected location")
		}
		return nil, err
	}

	result, err := uc.syncer.Execute(ctx, SyncLocationCommand{Location: location})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("manual sync completed",
		"business_sid", biz.SID,
		"processed", result.Processed,
		"new", result.New)

	return result, nil
}
