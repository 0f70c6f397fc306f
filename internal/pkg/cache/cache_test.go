package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedStudent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	key := StudentKey("2024-10-0001")

	var got cachedStudent
	assert.True(t, errors.Is(c.Get(ctx, key, &got), ErrCacheMiss))

	require.NoError(t, c.Set(ctx, key, cachedStudent{ID: "2024-10-0001", Name: "Ayu"}, time.Minute))
	require.NoError(t, c.Get(ctx, key, &got))
	assert.Equal(t, cachedStudent{ID: "2024-10-0001", Name: "Ayu"}, got)

	require.NoError(t, c.Delete(ctx, key, StudentKey("missing")))
	assert.True(t, errors.Is(c.Get(ctx, key, &got), ErrCacheMiss))
}

func TestCache_Expires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := StudentKey("2024-10-0002")

	require.NoError(t, c.Set(ctx, key, cachedStudent{ID: "2024-10-0002"}, TTLStudentCache))
	mr.FastForward(TTLStudentCache + time.Second)

	var got cachedStudent
	assert.True(t, errors.Is(c.Get(ctx, key, &got), ErrCacheMiss))
}

func TestCache_EmptyKeyAndPing(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	assert.ErrorIs(t, c.Set(ctx, "", 1, time.Minute), ErrCacheKeyEmpty)
	assert.NoError(t, c.Ping(ctx))
}

func TestNoop(t *testing.T) {
	var s Store = Noop{}
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", 1, time.Minute))
	var v int
	assert.ErrorIs(t, s.Get(ctx, "k", &v), ErrCacheMiss)
	assert.NoError(t, s.Delete(ctx, "k"))
	assert.NoError(t, s.Ping(ctx))
}
