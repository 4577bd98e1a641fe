package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
)

type mockBusinessRepo struct {
	createFn        func(ctx context.Context, b *business.Business) error
	getByIDFn       func(ctx context.Context, id uint) (*business.Business, error)
	getBySIDFn      func(ctx context.Context, sid string) (*business.Business, error)
	listByOwnerIDFn func(ctx context.Context, ownerID uint) ([]*business.Business, error)
	listFn          func(ctx context.Context, offset, limit int) ([]*business.Business, int64, error)
	updateFn        func(ctx context.Context, b *business.Business) error
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockBusinessRepo) Create(ctx context.Context, b *business.Business) error {
	return m.createFn(ctx, b)
}

func (m *mockBusinessRepo) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBusinessRepo) GetBySID(ctx context.Context, sid string) (*business.Business, error) {
	return m.getBySIDFn(ctx, sid)
}

func (m *mockBusinessRepo) ListByOwnerID(ctx context.Context, ownerID uint) ([]*business.Business, error) {
	return m.listByOwnerIDFn(ctx, ownerID)
}

func (m *mockBusinessRepo) List(ctx context.Context, offset, limit int) ([]*business.Business, int64, error) {
	return m.listFn(ctx, offset, limit)
}

func (m *mockBusinessRepo) Update(ctx context.Context, b *business.Business) error {
	return m.updateFn(ctx, b)
}

func (m *mockBusinessRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockLocationRepo struct {
	upsertFn             func(ctx context.Context, l *connection.ConnectedLocation) error
	getByBusinessIDFn    func(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error)
	listAllFn            func(ctx context.Context) ([]*connection.ConnectedLocation, error)
	deleteByBusinessIDFn func(ctx context.Context, businessID uint) error
	deleteByAccountIDFn  func(ctx context.Context, accountID uint) error
}

func (m *mockLocationRepo) Upsert(ctx context.Context, l *connection.ConnectedLocation) error {
	return m.upsertFn(ctx, l)
}

func (m *mockLocationRepo) GetByBusinessID(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error) {
	return m.getByBusinessIDFn(ctx, businessID)
}

func (m *mockLocationRepo) ListAll(ctx context.Context) ([]*connection.ConnectedLocation, error) {
	return m.listAllFn(ctx)
}

func (m *mockLocationRepo) DeleteByBusinessID(ctx context.Context, businessID uint) error {
	return m.deleteByBusinessIDFn(ctx, businessID)
}

func (m *mockLocationRepo) DeleteByAccountID(ctx context.Context, accountID uint) error {
	return m.deleteByAccountIDFn(ctx, accountID)
}
