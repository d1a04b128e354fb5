package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"github.com/redis/go-redis/v9"
)

type poolCache struct {
	client *redis.Client
}

func NewPoolCache(client *redis.Client) repository.PoolCache {
	return &poolCache{client: client}
}

// cachedCandidate keeps the hidden flag that the API encoding of Candidate drops.
type cachedCandidate struct {
	domain.Candidate
	Hidden bool `json:"hidden"`
}

const poolKeyPrefix = "feed:pool:"

func poolKey(viewerID int) string {
	return fmt.Sprintf("%s%d", poolKeyPrefix, viewerID)
}

func (c *poolCache) Get(ctx context.Context, viewerID int) ([]domain.Candidate, bool, error) {
	raw, err := c.client.Get(ctx, poolKey(viewerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cached []cachedCandidate
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached pool: %w", err)
	}

	pool := make([]domain.Candidate, 0, len(cached))
	for _, cc := range cached {
		cand := cc.Candidate
		cand.Hidden = cc.Hidden
		pool = append(pool, cand)
	}
	return pool, true, nil
}

func (c *poolCache) Set(ctx context.Context, viewerID int, pool []domain.Candidate, ttl time.Duration) error {
	cached := make([]cachedCandidate, 0, len(pool))
	for _, cand := range pool {
		cached = append(cached, cachedCandidate{Candidate: cand, Hidden: cand.Hidden})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode pool: %w", err)
	}
	return c.client.Set(ctx, poolKey(viewerID), raw, ttl).Err()
}

func (c *poolCache) Delete(ctx context.Context, viewerID int) error {
	return c.client.Del(ctx, poolKey(viewerID)).Err()
}

func (c *poolCache) DeleteAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, poolKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
