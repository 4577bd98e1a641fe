package usecases

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/reputaai/reputaai/internal/domain/business"
	"github.com/reputaai/reputaai/internal/domain/connection"
	"github.com/reputaai/reputaai/internal/infrastructure/google"
)

type mockAccountRepo struct {
	createFn               func(ctx context.Context, a *connection.ConnectedAccount) error
	getByIDFn              func(ctx context.Context, id uint) (*connection.ConnectedAccount, error)
	getByUserAndProviderFn func(ctx context.Context, userID uint, provider string) (*connection.ConnectedAccount, error)
	updateFn               func(ctx context.Context, a *connection.ConnectedAccount) error
	deleteFn               func(ctx context.Context, id uint) error
}

func (m *mockAccountRepo) Create(ctx context.Context, a *connection.ConnectedAccount) error {
	return m.createFn(ctx, a)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id uint) (*connection.ConnectedAccount, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAccountRepo) GetByUserAndProvider(ctx context.Context, userID uint, provider string) (*connection.ConnectedAccount, error) {
	return m.getByUserAndProviderFn(ctx, userID, provider)
}

func (m *mockAccountRepo) Update(ctx context.Context, a *connection.ConnectedAccount) error {
	return m.updateFn(ctx, a)
}

func (m *mockAccountRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockBusinessRepo struct {
	getBySIDFn func(ctx context.Context, sid string) (*business.Business, error)
}

func (m *mockBusinessRepo) Create(ctx context.Context, b *business.Business) error { return nil }

func (m *mockBusinessRepo) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	return nil, nil
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
	upsertFn func(ctx context.Context, l *connection.ConnectedLocation) error
}

func (m *mockLocationRepo) Upsert(ctx context.Context, l *connection.ConnectedLocation) error {
	return m.upsertFn(ctx, l)
}

func (m *mockLocationRepo) GetByBusinessID(ctx context.Context, businessID uint) (*connection.ConnectedLocation, error) {
	return nil, nil
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

type mockOAuthClient struct {
	getAuthURLFn     func(state string) string
	exchangeCodeFn   func(ctx context.Context, code string) (*oauth2.Token, error)
	getAccountInfoFn func(ctx context.Context, accessToken string) (*AccountInfo, error)
}

func (m *mockOAuthClient) GetAuthURL(state string) string {
	return m.getAuthURLFn(state)
}

func (m *mockOAuthClient) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return m.exchangeCodeFn(ctx, code)
}

func (m *mockOAuthClient) GetAccountInfo(ctx context.Context, accessToken string) (*AccountInfo, error) {
	return m.getAccountInfoFn(ctx, accessToken)
}

type mockStateStore struct {
	issueFn   func(ctx context.Context, userID uint) (string, error)
	consumeFn func(ctx context.Context, state string) (uint, error)
}

func (m *mockStateStore) Issue(ctx context.Context, userID uint) (string, error) {
	return m.issueFn(ctx, userID)
}

func (m *mockStateStore) Consume(ctx context.Context, state string) (uint, error) {
	return m.consumeFn(ctx, state)
}

type mockCipher struct{}

func (m *mockCipher) Encrypt(plaintext string) (string, error) {
	return "enc:" + plaintext, nil
}

type mockProfileAPI struct {
	listAccountsFn  func(ctx context.Context, accessToken string) ([]google.Account, error)
	listLocationsFn func(ctx context.Context, accessToken, accountName string) ([]google.Location, error)
}

func (m *mockProfileAPI) ListAccounts(ctx context.Context, accessToken string) ([]google.Account, error) {
	return m.listAccountsFn(ctx, accessToken)
}

func (m *mockProfileAPI) ListLocations(ctx context.Context, accessToken, accountName string) ([]google.Location, error) {
	return m.listLocationsFn(ctx, accessToken, accountName)
}

type mockTokenRunner struct{}

func (m *mockTokenRunner) DoWithRefresh(ctx context.Context, account *connection.ConnectedAccount, call func(accessToken string) error) error {
	return call("test-token")
}
