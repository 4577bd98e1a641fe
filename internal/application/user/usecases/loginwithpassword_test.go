package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/user"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func activeUser() *user.User {
	return &user.User{
		ID:           1,
		Email:        "owner@example.com",
		Name:         "Owner",
		PasswordHash: "hashed",
		Status:       "active",
	}
}

func TestLoginWithPassword_Success(t *testing.T) {
	var savedSession *user.Session

	uc := NewLoginWithPasswordUseCase(
		&mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "owner@example.com", email)
				return activeUser(), nil
			},
		},
		&mockSessionRepo{
			createFn: func(ctx context.Context, s *user.Session) error {
				savedSession = s
				return nil
			},
		},
		&mockHasher{
			verifyFn: func(password, hash string) error {
				assert.Equal(t, "secret123", password)
				assert.Equal(t, "hashed", hash)
				return nil
			},
		},
		&mockJWTService{
			generateFn: func(userID uint, sessionID string) (*TokenPair, error) {
				return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
			},
		},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    "owner@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)

	require.NotNil(t, savedSession)
	assert.Equal(t, uint(1), savedSession.UserID)
	assert.Equal(t, "refresh", savedSession.RefreshToken)
	assert.True(t, savedSession.ExpiresAt.After(time.Now()))
}

func TestLoginWithPassword_UnknownEmailAndBadPasswordLookAlike(t *testing.T) {
	notFound := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}
	badPassword := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return activeUser(), nil
		},
	}

	hasherReject := &mockHasher{
		verifyFn: func(password, hash string) error { return errors.New("mismatch") },
	}

	for name, repo := range map[string]*mockUserRepo{"unknown email": notFound, "bad password": badPassword} {
		t.Run(name, func(t *testing.T) {
			uc := NewLoginWithPasswordUseCase(repo, &mockSessionRepo{}, hasherReject, &mockJWTService{}, logger.NewLogger())

			_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "x@example.com", Password: "nope"})

			require.Error(t, err)
			// both failures produce the same message
			assert.Equal(t, "invalid email or password", apperrors.GetAppError(err).Message)
		})
	}
}

func TestLoginWithPassword_SuspendedUser(t *testing.T) {
	suspended := activeUser()
	suspended.Status = "suspended"

	uc := NewLoginWithPasswordUseCase(
		&mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return suspended, nil
			},
		},
		&mockSessionRepo{},
		&mockHasher{},
		&mockJWTService{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "owner@example.com", Password: "secret123"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}
