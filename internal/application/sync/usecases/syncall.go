package usecases

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/shared/logger"
)

// DefaultSyncWorkers bounds the concurrent location syncs.
const DefaultSyncWorkers = 4

// LocationSyncer is the per-location reconciliation step.
type LocationSyncer interface {
	Execute(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error)
}

type SyncAllCommand struct{}

type SyncAllResult struct {
	Locations int
	Processed int
	New       int
	Failed    int
}

// SyncAllUseCase fans the sync out over every connected location with a
// bounded worker pool. One location failing is recorded and skipped; the
// rest of the run continues.
type SyncAllUseCase struct {
	locationRepo connection.LocationRepository
	syncer       LocationSyncer
	lock         SyncLock
	workers      int
	logger       logger.Interface
}

func NewSyncAllUseCase(
	locationRepo connection.LocationRepository,
	syncer LocationSyncer,
	lock SyncLock,
	workers int,
	logger logger.Interface,
) *SyncAllUseCase {
	if workers <= 0 {
		workers = DefaultSyncWorkers
	}
	return &SyncAllUseCase{
		locationRepo: locationRepo,
		syncer:       syncer,
		lock:         lock,
		workers:      workers,
		logger:       logger,
	}
}

func (uc *SyncAllUseCase) Execute(ctx context.Context, _ SyncAllCommand) (*SyncAllResult, error) {
	holder := uuid.NewString()
	if err := uc.lock.Acquire(ctx, holder); err != nil {
		return nil, err
	}
	defer func() {
		if err := uc.lock.Release(ctx, holder); err != nil {
			uc.logger.Warnw("failed to release sync lock", "holder", holder, "error", err)
		}
	}()

	locations, err := uc.locationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("sync run started", "locations", len(locations), "workers", uc.workers)

	var processed, newCount, failed int64

	jobs := make(chan *connection.ConnectedLocation)
	var wg sync.WaitGroup
	for i := 0; i < uc.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for loc := range jobs {
				uc.syncOne(ctx, loc, &processed, &newCount, &failed)
			}
		}()
	}

	for _, loc := range locations {
		jobs <- loc
	}
	close(jobs)
	wg.Wait()

	result := &SyncAllResult{
		Locations: len(locations),
		Processed: int(processed),
		New:       int(newCount),
		Failed:    int(failed),
	}

	uc.logger.Infow("sync run finished",
		"locations", result.Locations,
		"processed", result.Processed,
		"new", result.New,
		"failed", result.Failed)

	return result, nil
}

// syncOne runs a single location sync. A panic inside the pipeline is
// contained here and counted as a failure, so one bad location cannot kill
// the worker and leave the run's lock held.
func (uc *SyncAllUseCase) syncOne(ctx context.Context, loc *connection.ConnectedLocation, processed, newCount, failed *int64) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(failed, 1)
			uc.logger.Errorw("location sync panicked",
				"location_name", loc.LocationName,
				"business_id", loc.BusinessID,
				"panic", r)
		}
	}()

	result, err := uc.syncer.Execute(ctx, SyncLocationCommand{Location: loc})
	if err != nil {
		atomic.AddInt64(failed, 1)
		uc.logger.Errorw("location sync failed",
			"location_name", loc.LocationName,
			"business_id", loc.BusinessID,
			"error", err)
		return
	}
	atomic.AddInt64(processed, int64(result.Processed))
	atomic.AddInt64(newCount, int64(result.New))
}
