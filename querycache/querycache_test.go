package querycache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fakeStore records every call and can be forced to fail.
type fakeStore struct {
	entries map[string][]byte
	ttls    map[string]time.Duration

	gets   int
	sets   int
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.gets++
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	data, ok := s.entries[key]
	return data, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = value
	s.ttls[key] = ttl
	return nil
}

type countingSource struct {
	calls  int
	result any
	err    error
}

func (c *countingSource) compute(_ context.Context) (any, error) {
	c.calls++
	return c.result, c.err
}

func TestCache_ReadThrough(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	source := &countingSource{result: map[string]any{"total": 3}}
	ctx := context.Background()
	params := Params{"category": "Shoes", "skip": 0, "limit": 50}

	// cold cache: exactly one source query and one store write
	payload, hit, err := cache.GetOrCompute(ctx, "products", params, source.compute)
	if err != nil {
		t.Fatalf("GetOrCompute() error: %v", err)
	}
	if hit {
		t.Fatal("first request reported a hit on a cold cache")
	}
	if source.calls != 1 {
		t.Fatalf("source queried %d times, want 1", source.calls)
	}
	if store.sets != 1 {
		t.Fatalf("store written %d times, want 1", store.sets)
	}

	// identical request before expiry: zero source queries, same payload
	cached, hit, err := cache.GetOrCompute(ctx, "products", params, source.compute)
	if err != nil {
		t.Fatalf("GetOrCompute() error: %v", err)
	}
	if !hit {
		t.Fatal("second identical request missed")
	}
	if source.calls != 1 {
		t.Fatalf("source queried %d times after warm repeat, want 1", source.calls)
	}
	if string(cached) != string(payload) {
		t.Fatalf("hit payload %q differs from miss payload %q", cached, payload)
	}
}

func TestCache_HitAndMissShareSerialization(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	source := &countingSource{result: []map[string]any{{"name": "A", "price": 19.99}}}
	ctx := context.Background()

	fresh, _, _ := cache.GetOrCompute(ctx, "products", Params{"skip": 0}, source.compute)
	cached, _, _ := cache.GetOrCompute(ctx, "products", Params{"skip": 0}, source.compute)

	var a, b any
	if err := json.Unmarshal(fresh, &a); err != nil {
		t.Fatalf("fresh payload is not valid JSON: %v", err)
	}
	if err := json.Unmarshal(cached, &b); err != nil {
		t.Fatalf("cached payload is not valid JSON: %v", err)
	}
	if string(fresh) != string(cached) {
		t.Fatal("cached bytes differ structurally from fresh bytes")
	}
}

func TestCache_StalenessTolerated(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	source := &countingSource{result: "before"}
	ctx := context.Background()
	params := Params{"skip": 0, "limit": 100}

	first, _, _ := cache.GetOrCompute(ctx, "users", params, source.compute)

	// mutate the source of truth; no invalidation happens
	source.result = "after"

	second, hit, _ := cache.GetOrCompute(ctx, "users", params, source.compute)
	if !hit {
		t.Fatal("expected the stale entry to still serve")
	}
	if string(second) != string(first) {
		t.Fatal("mutation leaked into a cached response before expiry")
	}

	// expiry is the only removal mechanism: drop the entry and recompute
	store.entries = map[string][]byte{}
	third, hit, _ := cache.GetOrCompute(ctx, "users", params, source.compute)
	if hit {
		t.Fatal("expected a miss after expiry")
	}
	if string(third) != `"after"` {
		t.Fatalf("post-expiry payload = %s, want the mutated value", third)
	}
}

func TestCache_StoreGetFailureDegradesToSource(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	cache := New(store, Policy{})
	source := &countingSource{result: 1}
	ctx := context.Background()

	payload, hit, err := cache.GetOrCompute(ctx, "users", Params{"skip": 0}, source.compute)
	if err != nil {
		t.Fatalf("store failure surfaced to the caller: %v", err)
	}
	if hit {
		t.Fatal("store failure reported as a hit")
	}
	if source.calls != 1 {
		t.Fatalf("source queried %d times, want 1", source.calls)
	}
	if string(payload) != "1" {
		t.Fatalf("payload = %s", payload)
	}
	if cache.Stats().StoreErrors == 0 {
		t.Fatal("store error not counted")
	}
}

func TestCache_StoreSetFailureSwallowed(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("connection reset")
	cache := New(store, Policy{})
	source := &countingSource{result: "ok"}

	payload, _, err := cache.GetOrCompute(context.Background(), "users", Params{"skip": 0}, source.compute)
	if err != nil {
		t.Fatalf("write failure surfaced as a request failure: %v", err)
	}
	if string(payload) != `"ok"` {
		t.Fatalf("payload = %s", payload)
	}
}

func TestCache_ComputeErrorPropagates(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	source := &countingSource{err: errors.New("db down")}

	_, _, err := cache.GetOrCompute(context.Background(), "users", Params{"skip": 0}, source.compute)
	if err == nil {
		t.Fatal("compute error swallowed")
	}
	if store.sets != 0 {
		t.Fatal("a failed compute was cached")
	}
}

func TestCache_TTLFromWindowParam(t *testing.T) {
	cases := []struct {
		period any
		want   time.Duration
	}{
		{"1year", 24 * time.Hour},
		{"3months", time.Hour},
		{"week", DefaultShortTTL},
		{nil, DefaultShortTTL},
		{"bogus", DefaultShortTTL},
	}

	for _, c := range cases {
		store := newFakeStore()
		cache := New(store, Policy{})
		source := &countingSource{result: 1}

		_, _, err := cache.GetOrCompute(context.Background(), "chart_stats",
			Params{"period": c.period}, source.compute)
		if err != nil {
			t.Fatalf("GetOrCompute(period=%v) error: %v", c.period, err)
		}
		for _, ttl := range store.ttls {
			if ttl != c.want {
				t.Errorf("period=%v stored with ttl %v, want %v", c.period, ttl, c.want)
			}
		}
	}
}

func TestCache_ExplicitTTLOverride(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	source := &countingSource{result: 1}

	// override wins over the policy even when the window says short
	_, _, err := cache.GetOrCompute(context.Background(), "fact_sales",
		Params{"period": "week"}, source.compute, WithTTL(LongTTL))
	if err != nil {
		t.Fatalf("GetOrCompute() error: %v", err)
	}
	for _, ttl := range store.ttls {
		if ttl != LongTTL {
			t.Fatalf("stored with ttl %v, want override %v", ttl, LongTTL)
		}
	}
}

func TestCache_RefreshSkipsLookup(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	source := &countingSource{result: "v2"}
	ctx := context.Background()
	params := Params{"period": "1year"}

	// warm, then refresh: lookup is skipped and the entry overwritten
	if _, _, err := cache.GetOrCompute(ctx, "chart_stats", params, source.compute); err != nil {
		t.Fatalf("GetOrCompute() error: %v", err)
	}
	gets := store.gets

	if _, err := cache.Refresh(ctx, "chart_stats", params, source.compute); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if store.gets != gets {
		t.Fatal("Refresh() performed a lookup")
	}
	if source.calls != 2 {
		t.Fatalf("source queried %d times, want 2", source.calls)
	}
}

func TestCache_StatsCounters(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	source := &countingSource{result: 1}
	ctx := context.Background()

	_, _, _ = cache.GetOrCompute(ctx, "users", Params{"skip": 0}, source.compute)
	_, _, _ = cache.GetOrCompute(ctx, "users", Params{"skip": 0}, source.compute)
	_, _, _ = cache.GetOrCompute(ctx, "users", Params{"skip": 1}, source.compute)

	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 2 || stats.Writes != 2 {
		t.Fatalf("Stats() = %+v, want 1 hit, 2 misses, 2 writes", stats)
	}
}
