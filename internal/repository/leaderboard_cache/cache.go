package leaderboard_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"slots_backend/internal/model"
	"slots_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

// Leaderboard answers are expensive aggregates over the ledger, so the
// computed top list is kept in redis for a short window.
const cacheTTL = 2 * time.Minute

type cache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) repository.LeaderboardCache {
	return &cache{
		client: client,
	}
}

func (c *cache) Get(ctx context.Context, days int) ([]model.LeaderboardEntry, error) {
	raw, err := c.client.Get(ctx, key(days)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (c *cache) Set(ctx context.Context, days int, entries []model.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key(days), raw, cacheTTL).Err()
}

func key(days int) string {
	return fmt.Sprintf("leaderboard:%d", days)
}
