package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter answers whether a given source key may perform one more request
// inside the configured window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter counts requests per key in a fixed window, the same scheme
// RedisLimiter uses, so swapping backends does not change behavior.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	size    time.Duration
}

type window struct {
	count   int
	resetAt time.Time
}

func NewMemory(limit int, size time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		size:    size,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		m.evictExpired(now)
		w = &window{resetAt: now.Add(m.size)}
		m.windows[key] = w
	}

	w.count++
	return w.count <= m.limit, nil
}

// evictExpired drops closed windows once the map grows large. Called with
// the lock held.
func (m *MemoryLimiter) evictExpired(now time.Time) {
	if len(m.windows) < 1024 {
		return
	}
	for k, w := range m.windows {
		if now.After(w.resetAt) {
			delete(m.windows, k)
		}
	}
}
