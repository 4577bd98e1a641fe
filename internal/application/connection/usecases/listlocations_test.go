package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func TestListLocations_FlattensAccounts(t *testing.T) {
	uc := NewListLocationsUseCase(
		&mockAccountRepo{
			getByUserAndProviderFn: func(ctx context.Context, userID uint, provider string) (*connection.ConnectedAccount, error) {
				return &connection.ConnectedAccount{ID: 1, UserID: userID}, nil
			},
		},
		&mockProfileAPI{
			listAccountsFn: func(ctx context.Context, accessToken string) ([]google.Account, error) {
				return []google.Account{
					{Name: "accounts/1", AccountName: "Main"},
					{Name: "accounts/2", AccountName: "Secondary"},
				}, nil
			},
			listLocationsFn: func(ctx context.Context, accessToken, accountName string) ([]google.Location, error) {
				if accountName == "accounts/1" {
					return []google.Location{
						{Name: "accounts/1/locations/10", LocationName: "Cafe Aurora", Address: "1 Main St"},
					}, nil
				}
				return []google.Location{
					{Name: "accounts/2/locations/20", LocationName: "Cafe Borealis"},
				}, nil
			},
		},
		&mockTokenRunner{},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), ListLocationsCommand{UserID: 1})

	require.NoError(t, err)
	require.Len(t, result.Locations, 2)
	assert.Equal(t, "accounts/1/locations/10", result.Locations[0].Name)
	assert.Equal(t, "Main", result.Locations[0].AccountName)
	assert.Equal(t, "accounts/2/locations/20", result.Locations[1].Name)
}

func TestSelectLocation_ReplacesBinding(t *testing.T) {
	var upserted *connection.ConnectedLocation

	uc := NewSelectLocationUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 3, SID: sid, OwnerID: 1}, nil
			},
		},
		&mockAccountRepo{
			getByUserAndProviderFn: func(ctx context.Context, userID uint, provider string) (*connection.ConnectedAccount, error) {
				return &connection.ConnectedAccount{ID: 9, UserID: userID}, nil
			},
		},
		&mockLocationRepo{
			upsertFn: func(ctx context.Context, l *connection.ConnectedLocation) error {
				upserted = l
				return nil
			},
		},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), SelectLocationCommand{
		UserID:       1,
		BusinessSID:  "biz_abc",
		LocationName: "accounts/1/locations/10",
		Title:        "Cafe Aurora",
	})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, uint(3), upserted.BusinessID)
	assert.Equal(t, uint(9), upserted.AccountID)
	assert.Equal(t, "accounts/1/locations/10", upserted.LocationName)
}

func TestSelectLocation_RequiresConnection(t *testing.T) {
	uc := NewSelectLocationUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 3, SID: sid, OwnerID: 1}, nil
			},
		},
		&mockAccountRepo{
			getByUserAndProviderFn: func(ctx context.Context, userID uint, provider string) (*connection.ConnectedAccount, error) {
				return nil, apperrors.NewNotFoundError("connected account not found")
			},
		},
		&mockLocationRepo{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), SelectLocationCommand{
		UserID:       1,
		BusinessSID:  "biz_abc",
		LocationName: "accounts/1/locations/10",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
}
