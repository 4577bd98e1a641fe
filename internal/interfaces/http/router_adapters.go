package http

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	connectionUC "github.com/reputaai/reputaai/internal/application/connection/usecases"
	userUC "github.com/reputaai/reputaai/internal/application/user/usecases"
	"github.com/reputaai/reputaai/internal/infrastructure/auth"
)

// jwtServiceAdapter bridges the infrastructure JWT service to the
// usecase-level token interfaces.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, sessionID string) (*userUC.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return &userUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) VerifyRefreshToken(token string) (uint, string, error) {
	claims, err := a.JWTService.Verify(token)
	if err != nil {
		return 0, "", err
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return 0, "", fmt.Errorf("not a refresh token")
	}
	return claims.UserID, claims.SessionID, nil
}

// oauthClientAdapter maps the Google OAuth client onto the connection
// usecases' provider interface.
type oauthClientAdapter struct {
	client *auth.GoogleOAuthClient
}

func (a *oauthClientAdapter) GetAuthURL(state string) string {
	return a.client.GetAuthURL(state)
}

func (a *oauthClientAdapter) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return a.client.ExchangeCode(ctx, code)
}

func (a *oauthClientAdapter) GetAccountInfo(ctx context.Context, accessToken string) (*connectionUC.AccountInfo, error) {
	info, err := a.client.GetAccountInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &connectionUC.AccountInfo{
		ID:    info.ID,
		Email: info.Email,
	}, nil
}
