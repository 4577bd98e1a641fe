package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/user"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type GetMeCommand struct {
	UserID uint
}

type GetMeResult struct {
	User *user.User
}

type GetMeUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetMeUseCase(userRepo user.Repository, logger logger.Interface) *GetMeUseCase {
	return &GetMeUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, cmd GetMeCommand) (*GetMeResult, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	return &GetMeResult{User: u}, nil
}
