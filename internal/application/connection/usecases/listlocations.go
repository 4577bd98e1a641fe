package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

type ListLocationsCommand struct {
	UserID uint
}

// LocationOption is one selectable listing under the connected account.
type LocationOption struct {
	Name        string
	Title       string
	Address     string
	AccountName string
}

type ListLocationsResult struct {
	Locations []LocationOption
}

type ListLocationsUseCase struct {
	accountRepo connection.AccountRepository
	profileAPI  ProfileAPI
	tokenRunner TokenRunner
	logger      logger.Interface
}

func NewListLocationsUseCase(
	accountRepo connection.AccountRepository,
	profileAPI ProfileAPI,
	tokenRunner TokenRunner,
	logger logger.Interface,
) *ListLocationsUseCase {
	return &ListLocationsUseCase{
		accountRepo: accountRepo,
		profileAPI:  profileAPI,
		tokenRunner: tokenRunner,
		logger:      logger,
	}
}

// Execute walks all provider accounts visible to the grant and flattens
// their locations into selectable options.
func (uc *ListLocationsUseCase) Execute(ctx context.Context, cmd ListLocationsCommand) (*ListLocationsResult, error) {
	account, err := uc.accountRepo.GetByUserAndProvider(ctx, cmd.UserID, connection.ProviderGoogle)
	if err != nil {
		return nil, err
	}

	var options []LocationOption
	err = uc.tokenRunner.DoWithRefresh(ctx, account, func(accessToken string) error {
		options = options[:0] // a retried call starts over
		accounts, err := uc.profileAPI.ListAccounts(ctx, accessToken)
		if err != nil {
			return err
		}
		for _, acct := range accounts {
			locations, err := uc.profileAPI.ListLocations(ctx, accessToken, acct.Name)
			if err != nil {
				return err
			}
			for _, loc := range locations {
				options = append(options, LocationOption{
					Name:        loc.Name,
					Title:       loc.LocationName,
					Address:     loc.Address,
					AccountName: acct.AccountName,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ListLocationsResult{Locations: options}, nil
}
