package usecases

import (
	"context"
	"time"

	"github.com/reputaai/reputaai/internal/domain/business"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type UpdateBusinessCommand struct {
	SID        string
	UserID     uint
	Name       *string
	Address    *string
	Phone      *string
	ReviewLink *string
	ReplyTone  *string
}

type UpdateBusinessResult struct {
	Business *business.Business
}

type UpdateBusinessUseCase struct {
	businessRepo business.Repository
	logger       logger.Interface
}

func NewUpdateBusinessUseCase(businessRepo business.Repository, logger logger.Interface) *UpdateBusinessUseCase {
	return &UpdateBusinessUseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (uc *UpdateBusinessUseCase) Execute(ctx context.Context, cmd UpdateBusinessCommand) (*UpdateBusinessResult, error) {
	entity, err := uc.businessRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}
	if entity.OwnerID != cmd.UserID {
		return nil, apperrors.NewNotFoundError("business not found")
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, apperrors.NewValidationError("business name cannot be empty")
		}
		entity.Name = *cmd.Name
	}
	if cmd.Address != nil {
		entity.Address = *cmd.Address
	}
	if cmd.Phone != nil {
		entity.Phone = *cmd.Phone
	}
	if cmd.ReviewLink != nil {
		entity.ReviewLink = *cmd.ReviewLink
	}
	if cmd.ReplyTone != nil {
		if err := entity.SetReplyTone(*cmd.ReplyTone); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	entity.UpdatedAt = time.Now()

	if err := uc.businessRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("business updated", "business_sid", entity.SID)

	return &UpdateBusinessResult{Business: entity}, nil
}
