package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/domain/user"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

// TokenVerifier validates a refresh token and returns its session binding.
type TokenVerifier interface {
	VerifyRefreshToken(token string) (userID uint, sessionID string, err error)
}

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshTokenUseCase struct {
	sessionRepo user.SessionRepository
	verifier    TokenVerifier
	jwtService  JWTService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	sessionRepo user.SessionRepository,
	verifier TokenVerifier,
	jwtService JWTService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		sessionRepo: sessionRepo,
		verifier:    verifier,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Execute rotates the session's token pair. The stored refresh token must
// match the presented one so a stolen older token cannot be replayed after
// a rotation.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	userID, sessionID, err := uc.verifier.VerifyRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	session, err := uc.sessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if !session.IsValid() || session.RefreshToken != cmd.RefreshToken {
		return nil, apperrors.NewUnauthorizedError("session expired or revoked")
	}

	tokens, err := uc.jwtService.Generate(userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session.RefreshToken = tokens.RefreshToken
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Debugw("session tokens rotated", "user_id", userID, "session_id", sessionID)

	return &RefreshTokenResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
