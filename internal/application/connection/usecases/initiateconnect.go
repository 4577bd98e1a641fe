package usecases

import (
	"context"
	"fmt"

	"github.com/reputaai/reputaai/internal/shared/logger"
)

type InitiateConnectCommand struct {
	UserID uint
}

type InitiateConnectResult struct {
	AuthURL string
}

type InitiateConnectUseCase struct {
	oauthClient OAuthClient
	stateStore  StateStore
	logger      logger.Interface
}

func NewInitiateConnectUseCase(
	oauthClient OAuthClient,
	stateStore StateStore,
	logger logger.Interface,
) *InitiateConnectUseCase {
	return &InitiateConnectUseCase{
		oauthClient: oauthClient,
		stateStore:  stateStore,
		logger:      logger,
	}
}

func (uc *InitiateConnectUseCase) Execute(ctx context.Context, cmd InitiateConnectCommand) (*InitiateConnectResult, error) {
	state, err := uc.stateStore.Issue(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue oauth state: %w", err)
	}

	uc.logger.Debugw("provider connect initiated", "user_id", cmd.UserID)

	return &InitiateConnectResult{AuthURL: uc.oauthClient.GetAuthURL(state)}, nil
}
