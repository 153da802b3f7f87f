package store

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTTLSetGet(t *testing.T) {
	s := NewTTL[string](0)
	defer s.Close()

	s.Set("a", "value", time.Minute)

	got, ok := s.Get("a")
	if !ok {
		t.Fatal("expected key to be present")
	}
	if got != "value" {
		t.Errorf("expected %q, got %q", "value", got)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("expected missing key to be absent")
	}
}

func TestTTLExpiry(t *testing.T) {
	s := NewTTL[int](0)
	defer s.Close()

	base := time.Now()
	s.now = func() time.Time { return base }

	s.Set("code", 123456, 5*time.Minute)

	if _, ok := s.Get("code"); !ok {
		t.Fatal("expected entry before expiry")
	}

	s.now = func() time.Time { return base.Add(5*time.Minute + time.Second) }

	if _, ok := s.Get("code"); ok {
		t.Error("expected entry to expire")
	}
	if s.Len() != 0 {
		t.Errorf("expected lazy removal on Get, have %d entries", s.Len())
	}
}

func TestTTLNoExpiry(t *testing.T) {
	s := NewTTL[bool](0)
	defer s.Close()

	base := time.Now()
	s.now = func() time.Time { return base }

	s.Set("registered", true, 0)

	s.now = func() time.Time { return base.Add(24 * time.Hour) }

	if _, ok := s.Get("registered"); !ok {
		t.Error("expected zero-ttl entry to persist")
	}
}

func TestTTLDelete(t *testing.T) {
	s := NewTTL[string](0)
	defer s.Close()

	s.Set("a", "x", time.Minute)
	s.Delete("a")

	if _, ok := s.Get("a"); ok {
		t.Error("expected deleted key to be absent")
	}
	// Deleting an absent key is a no-op.
	s.Delete("a")
}

func TestTTLSweep(t *testing.T) {
	s := NewTTL[int](0)
	defer s.Close()

	base := time.Now()
	s.now = func() time.Time { return base }

	s.Set("old", 1, time.Minute)
	s.Set("fresh", 2, time.Hour)

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	s.sweep()

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry after sweep, have %d", s.Len())
	}
	if _, ok := s.Get("fresh"); !ok {
		t.Error("expected fresh entry to survive sweep")
	}
}

func TestTTLConcurrentAccess(t *testing.T) {
	s := NewTTL[int](10 * time.Millisecond)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%10)
				s.Set(key, n, time.Millisecond)
				s.Get(key)
				if j%25 == 0 {
					s.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestTTLCloseIdempotent(t *testing.T) {
	s := NewTTL[string](time.Millisecond)
	s.Close()
	s.Close()

	// Store stays usable after Close.
	s.Set("a", "x", time.Minute)
	if _, ok := s.Get("a"); !ok {
		t.Error("expected store to remain usable after Close")
	}
}
