package usecases

import (
	"context"
	"time"

	"github.com/reputaai/reputaai/internal/domain/automation"
	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/domain/review"
)

type mockRuleRepo struct {
	createFn           func(ctx context.Context, r *automation.Rule) error
	getBySIDFn         func(ctx context.Context, sid string) (*automation.Rule, error)
	listByBusinessIDFn func(ctx context.Context, businessID uint) ([]*automation.Rule, error)
	updateFn           func(ctx context.Context, r *automation.Rule) error
	deleteFn           func(ctx context.Context, id uint) error
}

func (m *mockRuleRepo) Create(ctx context.Context, r *automation.Rule) error {
	return m.createFn(ctx, r)
}

func (m *mockRuleRepo) GetBySID(ctx context.Context, sid string) (*automation.Rule, error) {
	return m.getBySIDFn(ctx, sid)
}

func (m *mockRuleRepo) ListByBusinessID(ctx context.Context, businessID uint) ([]*automation.Rule, error) {
	return m.listByBusinessIDFn(ctx, businessID)
}

func (m *mockRuleRepo) Update(ctx context.Context, r *automation.Rule) error {
	return m.updateFn(ctx, r)
}

func (m *mockRuleRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

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

type mockReviewRepo struct {
	getByExternalIDFn func(ctx context.Context, externalID string) (*review.ExternalReview, error)
	updateReplyFn     func(ctx context.Context, id uint, replyText string, repliedAt time.Time) error
}

func (m *mockReviewRepo) Upsert(ctx context.Context, r *review.ExternalReview) error { return nil }

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
	return m.updateReplyFn(ctx, id, replyText, repliedAt)
}

func (m *mockReviewRepo) StatsByBusinessID(ctx context.Context, businessID uint) (*review.Stats, error) {
	return nil, nil
}

type mockReplyClient struct {
	updateReplyFn func(ctx context.Context, accessToken, locationName, reviewID, comment string) error
}

func (m *mockReplyClient) UpdateReply(ctx context.Context, accessToken, locationName, reviewID, comment string) error {
	return m.updateReplyFn(ctx, accessToken, locationName, reviewID, comment)
}

type mockTokenRunner struct{}

func (m *mockTokenRunner) DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error {
	return call("test-token")
}

type mockAlertSender struct {
	sendFn func(to, businessName, reviewerName, comment string, rating int) error
}

func (m *mockAlertSender) SendReviewAlert(to, businessName, reviewerName, comment string, rating int) error {
	return m.sendFn(to, businessName, reviewerName, comment, rating)
}
