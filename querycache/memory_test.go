package querycache

import (
	"context"
	"testing"
	"time"
)

// timeable memory store: swap the clock instead of sleeping
func newClockedMemoryStore(start time.Time) (*MemoryStore, *time.Time) {
	now := start
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	return s, &now
}

func TestMemoryStore_SetGet(t *testing.T) {
	s, _ := newClockedMemoryStore(time.Unix(1000, 0))
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte(`{"a":1}`), time.Minute); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v, want hit", ok, err)
	}
	if string(data) != `{"a":1}` {
		t.Fatalf("Get() = %q", data)
	}

	// absence is a normal outcome, not an error
	_, ok, err = s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get(missing) error: %v", err)
	}
	if ok {
		t.Fatal("Get(missing) reported a hit")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s, clock := newClockedMemoryStore(time.Unix(1000, 0))
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v"), 10*time.Second)

	*clock = clock.Add(9 * time.Second)
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	*clock = clock.Add(2 * time.Second)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("entry survived past its TTL")
	}
}

func TestMemoryStore_OverwriteResetsTTL(t *testing.T) {
	s, clock := newClockedMemoryStore(time.Unix(1000, 0))
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("old"), 10*time.Second)
	*clock = clock.Add(8 * time.Second)
	_ = s.Set(ctx, "k", []byte("new"), 10*time.Second)

	*clock = clock.Add(8 * time.Second)
	data, ok, _ := s.Get(ctx, "k")
	if !ok {
		t.Fatal("overwrite did not reset the TTL")
	}
	if string(data) != "new" {
		t.Fatalf("Get() = %q, want the overwritten value", data)
	}
}

func TestMemoryStore_SweepRemovesExpired(t *testing.T) {
	s, clock := newClockedMemoryStore(time.Unix(1000, 0))
	ctx := context.Background()

	_ = s.Set(ctx, "live", []byte("v"), time.Hour)
	_ = s.Set(ctx, "dead", []byte("v"), time.Second)

	*clock = clock.Add(time.Minute)
	s.sweep()

	if s.Len() != 1 {
		t.Fatalf("Len() = %d after sweep, want 1", s.Len())
	}
	if _, ok, _ := s.Get(ctx, "live"); !ok {
		t.Fatal("sweep removed a live entry")
	}
}
