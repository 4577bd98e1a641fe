package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type SelectLocationCommand struct {
	UserID       uint
	BusinessSID  string
	LocationName string
	Title        string
}

type SelectLocationResult struct {
	Location *connection.ConnectedLocation
}

type SelectLocationUseCase struct {
	businessRepo business.Repository
	accountRepo  connection.AccountRepository
	locationRepo connection.LocationRepository
	logger       logger.Interface
}

func NewSelectLocationUseCase(
	businessRepo business.Repository,
	accountRepo connection.AccountRepository,
	locationRepo connection.LocationRepository,
	logger logger.Interface,
) *SelectLocationUseCase {
	return &SelectLocationUseCase{
		businessRepo: businessRepo,
		accountRepo:  accountRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Execute binds a business to one external location. Re-selecting replaces
// the previous binding.
func (uc *SelectLocationUseCase) Execute(ctx context.Context, cmd SelectLocationCommand) (*SelectLocationResult, error) {
	biz, err := uc.businessRepo.GetBySID(ctx, cmd.BusinessSID)
	if err != nil {
		return nil, err
	}
	if biz.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	account, err := uc.accountRepo.GetByUserAndProvider(ctx, cmd.UserID, connection.ProviderGoogle)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewBadRequestError("no provider account connected")
		}
		return nil, err
	}

	location, err := connection.NewConnectedLocation(biz.ID, account.ID, cmd.LocationName, cmd.Title)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.locationRepo.Upsert(ctx, location); err != nil {
		return nil, err
	}

	uc.logger.Infow("location selected",
		"business_sid", biz.SID,
		"location_name", cmd.LocationName)

	return &SelectLocationResult{Location: location}, nil
}
