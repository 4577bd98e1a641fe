package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reputaai/reputaai/internal/domain/user"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

const sessionDuration = 30 * 24 * time.Hour

type LoginWithPasswordCommand struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginWithPasswordResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginWithPasswordUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	jwtService  JWTService
	logger      logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// don't reveal whether the email exists
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !existing.IsActive() {
		return nil, apperrors.NewForbiddenError("account is suspended")
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	sessionID := uuid.NewString()
	tokens, err := uc.jwtService.Generate(existing.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session, err := user.NewSession(sessionID, existing.ID, tokens.RefreshToken, time.Now().Add(sessionDuration))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	session.UserAgent = cmd.UserAgent
	session.IPAddress = cmd.IPAddress

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID, "session_id", sessionID)

	return &LoginWithPasswordResult{
		User:         existing,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
