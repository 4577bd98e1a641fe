package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reputaai/reputaai/internal/domain/review"
	"github.com/reputaai/reputaai/internal/shared/constants"
)

const analyticsTTL = 10 * time.Minute

// AnalyticsCache stores computed review statistics per business so dashboard
// reads do not hit the aggregation query on every request. Entries are
// invalidated after a sync run writes new reviews.
type AnalyticsCache struct {
	client *redis.Client
}

func NewAnalyticsCache(client *redis.Client) *AnalyticsCache {
	return &AnalyticsCache{client: client}
}

func (c *AnalyticsCache) key(businessSID string) string {
	return fmt.Sprintf(constants.AnalyticsCacheKey, businessSID)
}

// Get returns the cached stats or (nil, nil) on a miss.
func (c *AnalyticsCache) Get(ctx context.Context, businessSID string) (*review.Stats, error) {
	data, err := c.client.Get(ctx, c.key(businessSID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read analytics cache: %w", err)
	}

	var stats review.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached analytics: %w", err)
	}
	return &stats, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, businessSID string, stats *review.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode analytics: %w", err)
	}
	if err := c.client.Set(ctx, c.key(businessSID), data, analyticsTTL).Err(); err != nil {
		return fmt.Errorf("failed to write analytics cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached stats for a business.
func (c *AnalyticsCache) Invalidate(ctx context.Context, businessSID string) error {
	if err := c.client.Del(ctx, c.key(businessSID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate analytics cache: %w", err)
	}
	return nil
}
