package querycache

import (
	"context"
	"errors"
	"testing"
)

type preloadRecorder struct {
	chart   int
	listing int
	summary int
}

func (r *preloadRecorder) jobs(listingErr error) []PreloadJob {
	return []PreloadJob{
		{
			Endpoint:      "chart_stats",
			AlwaysRefresh: true,
			Params:        func(window string) Params { return Params{"period": window} },
			Compute: func(_ context.Context, window string) (any, error) {
				r.chart++
				return map[string]any{"period": window}, nil
			},
		},
		{
			Endpoint: "fact_sales",
			Params: func(window string) Params {
				return Params{"period": window, "skip": 0, "limit": 1000}
			},
			Compute: func(_ context.Context, window string) (any, error) {
				r.listing++
				return []string{window}, listingErr
			},
		},
		{
			Endpoint: "summary_stats",
			Params:   func(window string) Params { return Params{"period": window} },
			Compute: func(_ context.Context, window string) (any, error) {
				r.summary++
				return map[string]any{"period": window}, nil
			},
		},
	}
}

func TestPreloader_WarmsEveryPair(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	rec := &preloadRecorder{}

	NewPreloader(cache, rec.jobs(nil)).Run(context.Background())

	if rec.chart != 3 || rec.listing != 3 || rec.summary != 3 {
		t.Fatalf("compute counts = %+v, want 3 per shape", rec)
	}
	if len(store.entries) != 9 {
		t.Fatalf("stored %d entries, want 9", len(store.entries))
	}
	// every preloaded entry carries the long TTL
	for key, ttl := range store.ttls {
		if ttl != LongTTL {
			t.Errorf("entry %s stored with ttl %v, want %v", key, ttl, LongTTL)
		}
	}
}

func TestPreloader_SecondRunOnlyRefreshesCharts(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	rec := &preloadRecorder{}
	preloader := NewPreloader(cache, rec.jobs(nil))

	preloader.Run(context.Background())
	preloader.Run(context.Background())

	// chart shape is always recomputed; listing and summary skip warm entries
	if rec.chart != 6 {
		t.Errorf("chart computed %d times, want 6", rec.chart)
	}
	if rec.listing != 3 {
		t.Errorf("listing computed %d times across two runs, want 3", rec.listing)
	}
	if rec.summary != 3 {
		t.Errorf("summary computed %d times across two runs, want 3", rec.summary)
	}
}

func TestPreloader_PairFailureDoesNotAbortRest(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	rec := &preloadRecorder{}

	NewPreloader(cache, rec.jobs(errors.New("query timeout"))).Run(context.Background())

	// the failing listing pair is skipped, everything else still warms
	if rec.chart != 3 || rec.summary != 3 {
		t.Fatalf("healthy shapes not fully warmed: %+v", rec)
	}
	if len(store.entries) != 6 {
		t.Fatalf("stored %d entries, want 6 (3 chart + 3 summary)", len(store.entries))
	}
}

func TestPreloader_WarmEntryFromLiveTrafficSkipped(t *testing.T) {
	store := newFakeStore()
	cache := New(store, Policy{})
	rec := &preloadRecorder{}
	ctx := context.Background()

	// a real request already populated the 1year summary
	_, _, err := cache.GetOrCompute(ctx, "summary_stats", Params{"period": "1year"},
		func(context.Context) (any, error) { return map[string]any{"period": "1year"}, nil })
	if err != nil {
		t.Fatalf("GetOrCompute() error: %v", err)
	}

	NewPreloader(cache, rec.jobs(nil)).Run(ctx)

	if rec.summary != 2 {
		t.Fatalf("summary computed %d times, want 2 (1year already live)", rec.summary)
	}
}
