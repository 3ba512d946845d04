package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quizhub/models"
)

const (
	ratingCacheKeyPrefix = "rating:top:"
	ratingCacheTTL       = 30 * time.Second
)

// RatingCache keeps rendered leaderboard pages in Redis so rating reads do not
// hit the store on every request. Optional: services run without it.
type RatingCache struct {
	rdb *redis.Client
}

// ConnectRatingCache initializes the Redis-backed rating cache and verifies
// the connection with a ping
func ConnectRatingCache(addr, password string, db int) (*RatingCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RatingCache{rdb: rdb}, nil
}

// Get returns the cached leaderboard for the given limit, if present
func (c *RatingCache) Get(ctx context.Context, limit int) ([]models.RatingEntry, bool) {
	data, err := c.rdb.Get(ctx, ratingCacheKey(limit)).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []models.RatingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Set caches the leaderboard for the given limit
func (c *RatingCache) Set(ctx context.Context, limit int, entries []models.RatingEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, ratingCacheKey(limit), data, ratingCacheTTL).Err()
}

// Invalidate drops every cached leaderboard page; called after a score award
func (c *RatingCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, ratingCacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func ratingCacheKey(limit int) string {
	return fmt.Sprintf("%s%d", ratingCacheKeyPrefix, limit)
}
