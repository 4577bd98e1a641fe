package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/user"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterWithPasswordResult struct {
	User *user.User
}

type RegisterWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	if len(cmd.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil && !apperrors.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entity, err := user.NewUser(cmd.Email, cmd.Name, hash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", entity.ID, "email", entity.Email)

	return &RegisterWithPasswordResult{User: entity}, nil
}
