// Package store provides small in-memory key-value stores with per-entry
// expiry. Instances are constructor-injected; there is no package-level state.
package store

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe key-value store whose entries expire.
// A background janitor removes stale entries until Close is called.
type TTL[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	done    chan struct{}
	closed  sync.Once
	now     func() time.Time
}

// NewTTL creates a store whose janitor sweeps at the given interval.
// A non-positive interval disables the janitor; expired entries are then
// only removed lazily on Get.
func NewTTL[V any](sweepInterval time.Duration) *TTL[V] {
	s := &TTL[V]{
		entries: make(map[string]entry[V]),
		done:    make(chan struct{}),
		now:     time.Now,
	}
	if sweepInterval > 0 {
		go s.janitor(sweepInterval)
	}
	return s
}

// Set stores value under key for the given lifetime. A non-positive ttl
// stores the entry without expiry.
func (s *TTL[V]) Set(key string, value V, ttl time.Duration) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Get returns the live value for key. Expired entries are treated as absent
// and removed.
func (s *TTL[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; another writer may have refreshed it.
		if cur, still := s.entries[key]; still && !cur.expiresAt.IsZero() && s.now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		var zero V
		return zero, false
	}

	return e.value, true
}

// Delete removes key if present.
func (s *TTL[V]) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len reports the number of stored entries, including any not yet swept.
func (s *TTL[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the janitor. The store remains usable afterwards.
func (s *TTL[V]) Close() {
	s.closed.Do(func() {
		close(s.done)
	})
}

func (s *TTL[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *TTL[V]) sweep() {
	now := s.now()

	s.mu.Lock()
	for key, e := range s.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}
