package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newFeedCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *FeedCache) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return s, NewFeedCache(rdb, ttl)
}

func TestFeedCache_MissStoreHitInvalidate(t *testing.T) {
	_, c := newFeedCache(t, time.Minute)
	ctx := context.Background()

	b, gen, ok, err := c.Load(ctx)
	if err != nil || ok || b != nil || gen != 0 {
		t.Fatalf("empty cache: got (%q, %d, %v, %v), want miss at gen 0", b, gen, ok, err)
	}

	if err := c.Store(ctx, gen, []byte(`[{"activity_type":"funded"}]`)); err != nil {
		t.Fatalf("Store: %v", err)
	}
	b, _, ok, err = c.Load(ctx)
	if err != nil || !ok || string(b) != `[{"activity_type":"funded"}]` {
		t.Fatalf("after Store: got (%q, %v, %v)", b, ok, err)
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	_, gen, ok, _ = c.Load(ctx)
	if ok || gen != 1 {
		t.Fatalf("after Invalidate: hit=%v gen=%d, want miss at gen 1", ok, gen)
	}
}

// A reader that loaded before a commit must not resurrect its stale page
// once the commit has invalidated the feed.
func TestFeedCache_LateStoreAfterInvalidateIsIgnored(t *testing.T) {
	_, c := newFeedCache(t, time.Minute)
	ctx := context.Background()

	_, seen, _, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if err := c.Store(ctx, seen, []byte(`["stale"]`)); err != nil {
		t.Fatalf("Store: %v", err)
	}

	b, gen, ok, err := c.Load(ctx)
	if err != nil || ok {
		t.Fatalf("stale page served: (%q, %v, %v)", b, ok, err)
	}
	if err := c.Store(ctx, gen, []byte(`["fresh"]`)); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if b, _, ok, _ := c.Load(ctx); !ok || string(b) != `["fresh"]` {
		t.Fatalf("fresh page not served: (%q, %v)", b, ok)
	}
}

func TestFeedCache_Expires(t *testing.T) {
	s, c := newFeedCache(t, 30*time.Second)
	ctx := context.Background()

	if err := c.Store(ctx, 0, []byte("[]")); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if ttl := s.TTL(pageKey(0)); ttl != 30*time.Second {
		t.Fatalf("TTL = %v, want 30s", ttl)
	}
	s.FastForward(31 * time.Second)
	if _, _, ok, _ := c.Load(ctx); ok {
		t.Fatalf("expected miss after TTL")
	}
}

func TestFeedCache_LoadErrorWhenRedisDown(t *testing.T) {
	s, c := newFeedCache(t, time.Minute)
	s.Close()
	if _, _, _, err := c.Load(context.Background()); err == nil {
		t.Fatalf("expected error with redis down")
	}
}
