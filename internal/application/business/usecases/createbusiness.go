// Package usecases implements the business (tenant) management operations.
package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/business"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/id"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type CreateBusinessCommand struct {
	OwnerID    uint
	Name       string
	Address    string
	Phone      string
	ReviewLink string
	ReplyTone  string
}

type CreateBusinessResult struct {
	Business *business.Business
}

type CreateBusinessUseCase struct {
	businessRepo business.Repository
	logger       logger.Interface
}

func NewCreateBusinessUseCase(businessRepo business.Repository, logger logger.Interface) *CreateBusinessUseCase {
	return &CreateBusinessUseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (uc *CreateBusinessUseCase) Execute(ctx context.Context, cmd CreateBusinessCommand) (*CreateBusinessResult, error) {
	sid, err := id.GenerateWithPrefix(id.PrefixBusiness, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate business ID: %w", err)
	}

	entity, err := business.NewBusiness(sid, cmd.OwnerID, cmd.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	entity.Address = cmd.Address
	entity.Phone = cmd.Phone
	entity.ReviewLink = cmd.ReviewLink
	if cmd.ReplyTone != "" {
		if err := entity.SetReplyTone(cmd.ReplyTone); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.businessRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("business created", "business_sid", entity.SID, "owner_id", entity.OwnerID)

	return &CreateBusinessResult{Business: entity}, nil
}
