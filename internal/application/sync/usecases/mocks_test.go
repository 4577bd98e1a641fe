package usecases

import (
	"context"
	"time"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
)

type mockAccountRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*connection.ConnectedAccount, error)
}

func (m *mockAccountRepo) Create(ctx context.Context, a *connection.ConnectedAccount) error {
	return nil
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id uint) (*connection.ConnectedAccount, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAccountRepo) GetByUserAndProvider(ctx context.Context, userID uint, provider string) (*connection.ConnectedAccount, error) {
	return nil, nil
}

func (m *mockAccountRepo) Update(ctx context.Context, a *connection.ConnectedAccount) error {
	return nil
}

func (m *mockAccountRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockBusinessRepo struct {
	getByIDFn  func(ctx context.Context, id uint) (*business.Business, error)
	getBySIDFn func(ctx context.Context, sid string) (*business.Business, error)
}

func (m *mockBusinessRepo) Create(ctx context.Context, b *business.Business) error { return nil }

func (m *mockBusinessRepo) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBusinessRepo) GetBySID(ctx context.Context, sid string) (*business.Business, error) {
	return m.getBySIDFn(ctx, sid)
}

func (m *mockBusinessRepo) ListByOwnerID(ctx context.Context, ownerID uint) ([]*business.Business, error) {
	return nil, nil
}

func (m *mockBusinessRepo) List(ctx context.Context, offset, limit int) ([]*business.Business, int64, error) {
	return nil, 0, nil
}

func (m *mockBusinessRepo) Update(ctx context.Context, b *business.Business) error { return nil }

func (m *mockBusinessRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockReviewRepo struct {
	upsertFn          func(ctx context.Context, r *review.ExternalReview) error
	getByExternalIDFn func(ctx context.Context, externalID string) (*review.ExternalReview, error)
}

func (m *mockReviewRepo) Upsert(ctx context.Context, r *review.ExternalReview) error {
	return m.upsertFn(ctx, r)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id uint) (*review.ExternalReview, error) {
	return nil, nil
}

func (m *mockReviewRepo) GetByExternalID(ctx context.Context, externalID string) (*review.ExternalReview, error) {
	return m.getByExternalIDFn(ctx, externalID)
}

func (m *mockReviewRepo) ListByBusinessID(ctx context.Context, businessID uint, filter review.ListFilter) ([]*review.ExternalReview, int64, error) {
	return nil, 0, nil
}

func (m *mockReviewRepo) UpdateReply(ctx context.Context, id uint, replyText string, repliedAt time.Time) error {
	return nil
}

func (m *mockReviewRepo) StatsByBusinessID(ctx context.Context, businessID uint) (*review.Stats, error) {
	return nil, nil
}

type mockLocationRepo struct {
	listAllFn         func(ctx context.Context) ([]*connection.ConnectedLocation, error)
	getByBusinessIDFn func(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error)
}

func (m *mockLocationRepo) Upsert(ctx context.Context, l *connection.ConnectedLocation) error {
	return nil
}

func (m *mockLocationRepo) GetByBusinessID(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error) {
	return m.getByBusinessIDFn(ctx, businessID)
}

func (m *mockLocationRepo) ListAll(ctx context.Context) ([]*connection.ConnectedLocation, error) {
	return m.listAllFn(ctx)
}

func (m *mockLocationRepo) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	return nil
}

func (m *mockLocationRepo) DeleteByAccountID(ctx context.Context, accountID uint) error {
	return nil
}

type mockFetcher struct {
	listReviewsFn func(ctx context.Context, accessToken, locationName string) ([]google.Review, error)
}

func (m *mockFetcher) ListReviews(ctx context.Context, accessToken, locationName string) ([]google.Review, error) {
	return m.listReviewsFn(ctx, accessToken, locationName)
}

type mockTokenRunner struct{}

func (m *mockTokenRunner) DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error {
	return call("test-token")
}

type mockEvaluator struct {
	evaluateFn func(ctx context.Context, businessID uint, rev *review.ExternalReview) error
}

func (m *mockEvaluator) EvaluateNewReview(ctx context.Context, businessID uint, rev *review.ExternalReview) error {
	if m.evaluateFn == nil {
		return nil
	}
	return m.evaluateFn(ctx, businessID, rev)
}

type mockInvalidator struct {
	invalidated []string
}

func (m *mockInvalidator) Invalidate(ctx context.Context, businessSID string) error {
	m.invalidated = append(m.invalidated, businessSID)
	return nil
}

type mockSyncLock struct {
	acquireFn func(ctx context.Context, holder string) error
	released  []string
}

func (m *mockSyncLock) Acquire(ctx context.Context, holder string) error {
	if m.acquireFn == nil {
		return nil
	}
	return m.acquireFn(ctx, holder)
}

func (m *mockSyncLock) Release(ctx context.Context, holder string) error {
	m.released = append(m.released, holder)
	return nil
}

type mockSyncer struct {
	executeFn func(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error)
}

func (m *mockSyncer) Execute(ctx context.Context, cmd SyncLocationCommand) (*SyncLocationResult, error) {
	return m.executeFn(ctx, cmd)
}
