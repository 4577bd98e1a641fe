package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reputaai/reputaai/internal/shared/constants"
)

const syncLockTTL = 30 * time.Minute

// ErrSyncInProgress is returned when a sync run is already holding the lock.
var ErrSyncInProgress = errors.New("a sync run is already in progress")

// SyncLock guards the global review sync so overlapping scheduler ticks and
// manual triggers cannot run concurrently. The lease expires on its own if a
// run dies without releasing.
type SyncLock struct {
	client *redis.Client
}

func NewSyncLock(client *redis.Client) *SyncLock {
	return &SyncLock{client: client}
}

// Acquire takes the lock or returns ErrSyncInProgress if another run holds
// it. The holder token identifies the run in logs.
func (l *SyncLock) Acquire(ctx context.Context, holder string) error {
	ok, err := l.client.SetNX(ctx, constants.SyncLockKey, holder, syncLockTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !ok {
		return ErrSyncInProgress
	}
	return nil
}

// Release drops the lock only if this holder still owns it.
func (l *SyncLock) Release(ctx context.Context, holder string) error {
	current, err := l.client.Get(ctx, constants.SyncLockKey).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect sync lock: %w", err)
	}
	if current != holder {
		return nil
	}
	if err := l.client.Del(ctx, constants.SyncLockKey).Err(); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}
	return nil
}
