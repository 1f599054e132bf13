package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	lim := NewMemory(5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := lim.Allow(ctx, "login:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := lim.Allow(ctx, "login:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok, "request over the limit should be denied")
}

func TestMemoryLimiter_StrictWithinWindow(t *testing.T) {
	lim := NewMemory(2, 500*time.Millisecond)
	ctx := context.Background()

	// Requests spread across the window must not earn extra capacity.
	allowed := 0
	for i := 0; i < 6; i++ {
		ok, err := lim.Allow(ctx, "login:1.2.3.4")
		require.NoError(t, err)
		if ok {
			allowed++
		}
		time.Sleep(40 * time.Millisecond)
	}

	assert.Equal(t, 2, allowed)
}

func TestMemoryLimiter_WindowExpiryResets(t *testing.T) {
	lim := NewMemory(1, 100*time.Millisecond)
	ctx := context.Background()

	ok, err := lim.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = lim.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	require.False(t, ok)

	time.Sleep(150 * time.Millisecond)

	ok, err = lim.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	lim := NewMemory(2, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := lim.Allow(ctx, "contact:1.2.3.4")
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, _ := lim.Allow(ctx, "contact:1.2.3.4")
	require.False(t, ok)

	// A different source is unaffected.
	ok, err := lim.Allow(ctx, "contact:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	lim := NewRedis(client, 3, time.Minute)
	ctx := context.Background()

	t.Run("allows up to limit then denies", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			ok, err := lim.Allow(ctx, "submit:1.2.3.4")
			require.NoError(t, err)
			assert.True(t, ok, "request %d should pass", i+1)
		}

		ok, err := lim.Allow(ctx, "submit:1.2.3.4")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)

		ok, err := lim.Allow(ctx, "submit:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("keys are scoped", func(t *testing.T) {
		ok, err := lim.Allow(ctx, "login:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
