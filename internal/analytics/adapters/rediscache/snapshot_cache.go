// Package rediscache stores the latest overview snapshot per user and range
// in Redis. A miss or a decode failure is reported as a miss; the usecase
// simply recomputes.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"castboard/internal/analytics/core/domain"
	"castboard/internal/analytics/core/ports"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

var _ ports.SnapshotCache = (*SnapshotCache)(nil)

func key(userID string, r domain.Range) string {
	return fmt.Sprintf("castboard:overview:%s:%s", userID, r)
}

func (c *SnapshotCache) Get(ctx context.Context, userID string, r domain.Range) (*domain.OverviewReport, error) {
	raw, err := c.client.Get(ctx, key(userID, r)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report domain.OverviewReport
	if err := json.Unmarshal(raw, &report); err != nil {
		// A corrupt snapshot is just a miss.
		return nil, nil
	}
	return &report, nil
}

func (c *SnapshotCache) Set(ctx context.Context, userID string, r domain.Range, report *domain.OverviewReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(userID, r), raw, c.ttl).Err()
}
