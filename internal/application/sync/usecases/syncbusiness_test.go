package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	apperrors "github.com/reputaai/reputaai/internal/shared/errors"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func TestSyncBusiness_RunsTheBusinessLocation(t *testing.T) {
	var syncedLocation *connection.ConnectedLocation
	syncer := &mockSyncer{
		executeFn: func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
			syncedLocation = cmd.Location
			return &SyncLocationResult{Processed: 4, New: 2}, nil
		},
	}

	uc := NewSyncBusinessUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 10, SID: sid, OwnerID: 1}, nil
			},
		},
		&mockLocationRepo{
			getByBusinessIDFn: func(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error) {
				return &connection.ConnectedLocation{ID: 3, BusinessID: businessID, AccountID: 5}, nil
			},
		},
		syncer,
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), SyncBusinessCommand{UserID: 1, BusinessSID: "biz_abc123"})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 2, result.New)
	require.NotNil(t, syncedLocation)
	assert.Equal(t, uint(10), syncedLocation.BusinessID)
}

func TestSyncBusiness_NoLocationIsBadRequest(t *testing.T) {
	uc := NewSyncBusinessUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 10, SID: sid, OwnerID: 1}, nil
			},
		},
		&mockLocationRepo{
			getByBusinessIDFn: func(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error) {
				return nil, apperrors.NewNotFoundError("location not found")
			},
		},
		&mockSyncer{executeFn: func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
			t.Fatal("syncer must not run without a connected location")
			return nil, nil
		}},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), SyncBusinessCommand{UserID: 1, BusinessSID: "biz_abc123"})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "business has no connected location", appErr.Message)
}

func TestSyncBusiness_OtherOwnersBusinessIsHidden(t *testing.T) {
	uc := NewSyncBusinessUseCase(
		&mockBusinessRepo{
			getBySIDFn: func(ctx context.Context, sid string) (*business.Business, error) {
				return &business.Business{ID: 10, SID: sid, OwnerID: 99}, nil
			},
		},
		&mockLocationRepo{},
		&mockSyncer{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), SyncBusinessCommand{UserID: 1, BusinessSID: "biz_abc123"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
