package usecases

import (
	"context"
	"time"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
)

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
	getByIDFn          func(ctx context.Context, id uint) (*review.ExternalReview, error)
	listByBusinessIDFn func(ctx context.Context, businessID uint, filter review.ListFilter) ([]*review.ExternalReview, int64, error)
	updateReplyFn      func(ctx context.Context, id uint, replyText string, repliedAt time.Time) error
	statsFn            func(ctx context.Context, businessID uint) (*review.Stats, error)
}

func (m *mockReviewRepo) Upsert(ctx context.Context, r *review.ExternalReview) error { return nil }

func (m *mockReviewRepo) GetByID(ctx context.Context, id uint) (*review.ExternalReview, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockReviewRepo) GetByExternalID(ctx context.Context, externalID string) (*review.ExternalReview, error) {
	return nil, nil
}

func (m *mockReviewRepo) ListByBusinessID(ctx context.Context, businessID uint, filter review.ListFilter) ([]*review.ExternalReview, int64, error) {
	return m.listByBusinessIDFn(ctx, businessID, filter)
}

func (m *mockReviewRepo) UpdateReply(ctx context.Context, id uint, replyText string, repliedAt time.Time) error {
	return m.updateReplyFn(ctx, id, replyText, repliedAt)
}

func (m *mockReviewRepo) StatsByBusinessID(ctx context.Context, businessID uint) (*review.Stats, error) {
	return m.statsFn(ctx, businessID)
}

type mockLocationRepo struct {
	getByBusinessIDFn func(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error)
}

func (m *mockLocationRepo) Upsert(ctx context.Context, l *connection.ConnectedLocation) error {
	return nil
}

func (m *mockLocationRepo) GetByBusinessID(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error) {
	return m.getByBusinessIDFn(ctx, businessID)
}

func (m *mockLocationRepo) ListAll(ctx context.Context) ([]*connection.ConnectedLocation, error) {
	return nil, nil
}

func (m *mockLocationRepo) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	return nil
}

func (m *mockLocationRepo) DeleteByAccountID(ctx context.Context, accountID uint) error {
	return nil
}

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

type mockReplyClient struct {
	updateReplyFn func(ctx context.Context, accessToken, locationName, reviewID, comment string) error
}

func (m *mockReplyClient) UpdateReply(ctx context.Context, accessToken, locationName, reviewID, comment string) error {
	return m.updateReplyFn(ctx, accessToken, locationName, reviewID, comment)
}

type mockTokenRunner struct {
	err error
}

func (m *mockTokenRunner) DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error {
	if m.err != nil {
		return m.err
	}
	return call("test-token")
}

type mockAnalyticsCache struct {
	getFn       func(ctx context.Context, businessSID string) (*review.Stats, error)
	setFn       func(ctx context.Context, businessSID string, stats *review.Stats) error
	invalidated []string
}

func (m *mockAnalyticsCache) Get(ctx context.Context, businessSID string) (*review.Stats, error) {
	if m.getFn == nil {
		return nil, nil
	}
	return m.getFn(ctx, businessSID)
}

func (m *mockAnalyticsCache) Set(ctx context.Context, businessSID string, stats *review.Stats) error {
	if m.setFn == nil {
		return nil
	}
	return m.setFn(ctx, businessSID, stats)
}

func (m *mockAnalyticsCache) Invalidate(ctx context.Context, businessSID string) error {
	m.invalidated = append(m.invalidated, businessSID)
	return nil
}
