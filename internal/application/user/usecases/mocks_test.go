package usecases

import (
	"context"

	"github.com/reputaai/reputaai/internal/domain/user"
)

type mockUserRepo struct {
	createFn     func(ctx context.Context, u *user.User) error
	getByIDFn    func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
	updateFn     func(ctx context.Context, u *user.User) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	return m.createFn(ctx, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	return m.updateFn(ctx, u)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockSessionRepo struct {
	createFn         func(ctx context.Context, s *user.Session) error
	getBySessionIDFn func(ctx context.Context, sessionID string) (*user.Session, error)
	updateFn         func(ctx context.Context, s *user.Session) error
	deleteByUserIDFn func(ctx context.Context, userID uint) error
}

func (m *mockSessionRepo) Create(ctx context.Context, s *user.Session) error {
	return m.createFn(ctx, s)
}

func (m *mockSessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*user.Session, error) {
	return m.getBySessionIDFn(ctx, sessionID)
}

func (m *mockSessionRepo) Update(ctx context.Context, s *user.Session) error {
	return m.updateFn(ctx, s)
}

func (m *mockSessionRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	return m.deleteByUserIDFn(ctx, userID)
}

type mockHasher struct {
	hashFn   func(password string) (string, error)
	verifyFn func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	return m.hashFn(password)
}

func (m *mockHasher) Verify(password, hash string) error {
	return m.verifyFn(password, hash)
}

type mockJWTService struct {
	generateFn func(userID uint, sessionID string) (*TokenPair, error)
}

func (m *mockJWTService) Generate(userID uint, sessionID string) (*TokenPair, error) {
	return m.generateFn(userID, sessionID)
}

type mockTokenVerifier struct {
	verifyFn func(token string) (uint, string, error)
}

func (m *mockTokenVerifier) VerifyRefreshToken(token string) (uint, string, error) {
	return m.verifyFn(token)
}
