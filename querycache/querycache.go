// Package querycache is the read-through caching facade in front of the
// relational reporting queries: deterministic key derivation, a TTL policy
// driven by the requested historical window, a startup preloader for the
// expensive long-window aggregates, and the per-request orchestration.
//
// The facade deliberately tolerates staleness: mutations never invalidate
// entries, expiry is the only removal mechanism, and concurrent misses for
// one key may race and overwrite each other with equivalent payloads.
package querycache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
)

// ComputeFunc produces the source-of-truth result for a query. The returned
// value is marshaled to JSON before storage, so hit and miss payloads share
// one serialization.
type ComputeFunc func(ctx context.Context) (any, error)

type options struct {
	ttl time.Duration
}

// Option tweaks a single GetOrCompute/Refresh call.
type Option func(*options)

// WithTTL overrides the window-based policy with an explicit TTL. The
// preloader uses it because it already knows it is caching long-horizon
// aggregates.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// Stats is a point-in-time snapshot of the facade counters.
type Stats struct {
	Hits        uint64    `json:"hits"`
	Misses      uint64    `json:"misses"`
	Writes      uint64    `json:"writes"`
	StoreErrors uint64    `json:"store_errors"`
	StartedAt   time.Time `json:"started_at"`
}

// Cache is the read-through orchestrator. Construct it once at startup and
// pass it explicitly to every component that caches; nothing looks it up
// from ambient state.
type Cache struct {
	store  Store
	policy Policy

	hits        atomic.Uint64
	misses      atomic.Uint64
	writes      atomic.Uint64
	storeErrors atomic.Uint64
	startedAt   time.Time
}

func New(store Store, policy Policy) *Cache {
	return &Cache{
		store:     store,
		policy:    policy,
		startedAt: time.Now(),
	}
}

// GetOrCompute serves one cacheable request: derive the key, try the store,
// and on miss run compute, store the marshaled result and return it. The
// returned bool reports whether the payload came from the cache.
//
// Store failures never fail the request: a Get error counts as a miss and a
// Set error is logged and swallowed. A compute error propagates unchanged
// and nothing is cached for that request.
//
// The TTL comes from the policy applied to params["period"] (the historical
// window token) unless WithTTL overrides it.
func (c *Cache) GetOrCompute(ctx context.Context, endpoint string, params Params, compute ComputeFunc, opts ...Option) (json.RawMessage, bool, error) {
	key, err := DeriveKey(endpoint, params)
	if err != nil {
		// a non-serializable parameter is the caller's fault, not the store's
		return nil, false, pkgError.ValidationError(err.Error())
	}

	if data, ok := c.lookup(ctx, key); ok {
		c.hits.Add(1)
		return data, true, nil
	}
	c.misses.Add(1)

	data, err := c.computeAndStore(ctx, key, params, compute, opts)
	if err != nil {
		return nil, false, err
	}
	return data, false, nil
}

// Refresh computes and stores unconditionally, skipping the lookup. The
// preloader uses it for the chart shape, which is recomputed on every boot
// even when a live entry exists.
func (c *Cache) Refresh(ctx context.Context, endpoint string, params Params, compute ComputeFunc, opts ...Option) (json.RawMessage, error) {
	key, err := DeriveKey(endpoint, params)
	if err != nil {
		return nil, pkgError.ValidationError(err.Error())
	}
	return c.computeAndStore(ctx, key, params, compute, opts)
}

// Has reports whether a live entry exists for the given query. A store
// failure reads as absent.
func (c *Cache) Has(ctx context.Context, endpoint string, params Params) bool {
	key, err := DeriveKey(endpoint, params)
	if err != nil {
		return false
	}
	_, ok := c.lookup(ctx, key)
	return ok
}

// Stats returns a snapshot of the facade counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Writes:      c.writes.Load(),
		StoreErrors: c.storeErrors.Load(),
		StartedAt:   c.startedAt,
	}
}

func (c *Cache) lookup(ctx context.Context, key string) (json.RawMessage, bool) {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		// degrade to a direct query, the store may be back for the write
		c.storeErrors.Add(1)
		logrus.Warnf("[CACHE] Store get failed for %s, falling back to source: %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return data, true
}

func (c *Cache) computeAndStore(ctx context.Context, key string, params Params, compute ComputeFunc, opts []Option) (json.RawMessage, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	result, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	ttl := o.ttl
	if ttl <= 0 {
		ttl = c.policy.TTLFor(windowOf(params))
	}

	if err := c.store.Set(ctx, key, data, ttl); err != nil {
		c.storeErrors.Add(1)
		logrus.Warnf("[CACHE] Store set failed for %s: %v", key, err)
	} else {
		c.writes.Add(1)
	}

	return data, nil
}

// windowOf extracts the historical window token from the parameter set.
// Cached endpoints carry it under "period"; everything else falls through
// to the policy default.
func windowOf(params Params) string {
	v, ok := params["period"]
	if !ok || v == nil {
		return ""
	}
	switch token := v.(type) {
	case string:
		return token
	case *string:
		if token == nil {
			return ""
		}
		return *token
	}
	return ""
}
