// Package usecases implements the account and session operations.
package usecases

// PasswordHasher abstracts the bcrypt dependency for tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and validates the session token pair.
type JWTService interface {
	Generate(userID uint, sessionID string) (*TokenPair, error)
}
