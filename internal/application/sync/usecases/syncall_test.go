package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/infrastructure/cache"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

func locations(n int) []*connection.ConnectedLocation {
	out := make([]*connection.ConnectedLocation, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &connection.ConnectedLocation{
			ID:           uint(i),
			BusinessID:   uint(i),
			AccountID:    1,
			LocationName: "accounts/1/locations/" + string(rune('0'+i)),
		})
	}
	return out
}

func TestSyncAll_AggregatesCountsAcrossLocations(t *testing.T) {
	lock := &mockSyncLock{}
	syncer := &mockSyncer{
		executeFn: func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
			return &SyncLocationResult{Processed: 3, New: 1}, nil
		},
	}

	uc := NewSyncAllUseCase(
		&mockLocationRepo{listAllFn: func(ctx context.Context) ([]*connection.ConnectedLocation, error) {
			return locations(5), nil
		}},
		syncer,
		lock,
		2,
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), SyncAllCommand{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Locations)
	assert.Equal(t, 15, result.Processed)
	assert.Equal(t, 5, result.New)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, lock.released, 1, "lock must be released after the run")
}

func TestSyncAll_OneFailingLocationDoesNotStopTheRest(t *testing.T) {
	lock := &mockSyncLock{}

	var mu sync.Mutex
	var synced []uint
	syncer := &mockSyncer{
		executeFn: func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
			if cmd.Location.ID == 2 {
				return nil, errors.New("token revoked by user")
			}
			mu.Lock()
			synced = append(synced, cmd.Location.ID)
			mu.Unlock()
			return &SyncLocationResult{Processed: 1}, nil
		},
	}

	uc := NewSyncAllUseCase(
		&mockLocationRepo{listAllFn: func(ctx context.Context) ([]*connection.ConnectedLocation, error) {
			return locations(4), nil
		}},
		syncer,
		lock,
		2,
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), SyncAllCommand{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Locations)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Processed)
	assert.Len(t, synced, 3)
	assert.NotContains(t, synced, uint(2))
}

func TestSyncAll_PanickingLocationIsCountedAsFailed(t *testing.T) {
	lock := &mockSyncLock{}

	var mu sync.Mutex
	var synced []uint
	syncer := &mockSyncer{
		executeFn: func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
			if cmd.Location.ID == 2 {
				panic("corrupt review payload")
			}
			mu.Lock()
			synced = append(synced, cmd.Location.ID)
			mu.Unlock()
			return &SyncLocationResult{Processed: 1}, nil
		},
	}

	uc := NewSyncAllUseCase(
		&mockLocationRepo{listAllFn: func(ctx context.Context) ([]*connection.ConnectedLocation, error) {
			return locations(4), nil
		}},
		syncer,
		lock,
		2,
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), SyncAllCommand{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Locations)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Processed)
	assert.Len(t, synced, 3)
	assert.NotContains(t, synced, uint(2))
	assert.Len(t, lock.released, 1, "lock must be released after the run")
}

func TestSyncAll_LockBusyAbortsRun(t *testing.T) {
	lock := &mockSyncLock{
		acquireFn: func(ctx context.Context, holder string) error {
			return cache.ErrSyncInProgress
		},
	}

	listCalled := false
	uc := NewSyncAllUseCase(
		&mockLocationRepo{listAllFn: func(ctx context.Context) ([]*connection.ConnectedLocation, error) {
			listCalled = true
			return nil, nil
		}},
		&mockSyncer{executeFn: func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
			t.Fatal("syncer must not run when the lock is held")
			return nil, nil
		}},
		lock,
		2,
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), SyncAllCommand{})
	require.ErrorIs(t, err, cache.ErrSyncInProgress)
	assert.False(t, listCalled)
	assert.Empty(t, lock.released, "a lock we never held must not be released")
}

func TestSyncAll_ListErrorReleasesLock(t *testing.T) {
	lock := &mockSyncLock{}

	uc := NewSyncAllUseCase(
		&mockLocationRepo{listAllFn: func(ctx context.Context) ([]*connection.ConnectedLocation, error) {
			return nil, errors.New("driver: bad connection")
		}},
		&mockSyncer{executeFn: func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
			return nil, nil
		}},
		lock,
		0,
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), SyncAllCommand{})
	require.Error(t, err)
	assert.Len(t, lock.released, 1)
}
