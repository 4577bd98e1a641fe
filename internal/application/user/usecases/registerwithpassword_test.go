package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/user"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func TestRegisterWithPassword_Success(t *testing.T) {
	var created *user.User

	uc := NewRegisterWithPasswordUseCase(
		&mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return nil, apperrors.NewNotFoundError("user not found")
			},
			createFn: func(ctx context.Context, u *user.User) error {
				u.ID = 42
				created = u
				return nil
			},
		},
		&mockHasher{
			hashFn: func(password string) (string, error) {
				return "hashed:" + password, nil
			},
		},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "Owner@Example.com",
		Name:     "Owner",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.User.ID)
	require.NotNil(t, created)
	assert.Equal(t, "owner@example.com", created.Email)
	assert.Equal(t, "hashed:secret123", created.PasswordHash)
}

func TestRegisterWithPassword_DuplicateEmail(t *testing.T) {
	uc := NewRegisterWithPasswordUseCase(
		&mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{ID: 1, Email: email}, nil
			},
		},
		&mockHasher{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegisterWithPassword_ShortPassword(t *testing.T) {
	uc := NewRegisterWithPasswordUseCase(&mockUserRepo{}, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "short",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
