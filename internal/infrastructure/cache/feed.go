package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	feedGenKey  = "feed:gen"
	feedPageKey = "feed:recent:"
)

// FeedCache holds one serialized copy of the newest activity page per
// generation. Invalidate starts a new generation, so a page built from a
// read that raced a commit is stored under a key no reader asks for.
type FeedCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFeedCache(rdb *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{rdb: rdb, ttl: ttl}
}

func pageKey(gen int64) string { return feedPageKey + strconv.FormatInt(gen, 10) }

// Load returns the current generation and, when present, its page.
func (c *FeedCache) Load(ctx context.Context) ([]byte, int64, bool, error) {
	gen, err := c.rdb.Get(ctx, feedGenKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, err
	}
	b, err := c.rdb.Get(ctx, pageKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}
	return b, gen, true, nil
}

// Store writes payload for gen, the generation returned by the Load that
// preceded the database read.
func (c *FeedCache) Store(ctx context.Context, gen int64, payload []byte) error {
	return c.rdb.Set(ctx, pageKey(gen), payload, c.ttl).Err()
}

func (c *FeedCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, feedGenKey).Err()
}
