package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	oauthStatePrefix = "reputaai:oauth:state:"
	oauthStateTTL    = 10 * time.Minute
)

// ErrStateInvalid is returned when the callback state is unknown or expired.
var ErrStateInvalid = errors.New("oauth state not found or expired")

// OAuthStateStore issues and validates single-use CSRF states for the
// provider connect flow. Each state is bound to the initiating user.
type OAuthStateStore struct {
	client *redis.Client
}

func NewOAuthStateStore(client *redis.Client) *OAuthStateStore {
	return &OAuthStateStore{client: client}
}

// Issue generates a random state bound to the user and stores it with a TTL.
func (s *OAuthStateStore) Issue(ctx context.Context, userID uint) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	state := hex.EncodeToString(raw)

	key := oauthStatePrefix + state
	if err := s.client.Set(ctx, key, userID, oauthStateTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}

	return state, nil
}

// Consume validates the state and returns the bound user ID. States are
// single use: GETDEL removes the key atomically.
func (s *OAuthStateStore) Consume(ctx context.Context, state string) (uint, error) {
	if state == "" {
		return 0, ErrStateInvalid
	}

	val, err := s.client.GetDel(ctx, oauthStatePrefix+state).Result()
	if err == redis.Nil {
		return 0, ErrStateInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("failed to consume oauth state: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt oauth state value: %w", err)
	}

	return uint(userID), nil
}
