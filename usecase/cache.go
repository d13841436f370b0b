package usecase

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	domainCache "github.com/mirtechlab/mt-analytics/domains/cache"
	"github.com/mirtechlab/mt-analytics/querycache"
)

type cacheService struct {
	cache   *querycache.Cache
	backend string
}

// NewCacheService exposes the facade counters for operational inspection.
// backend names the configured store ("valkey" or "memory").
func NewCacheService(cache *querycache.Cache, backend string) domainCache.ICacheUsecase {
	return &cacheService{cache: cache, backend: backend}
}

func (s *cacheService) Stats(_ context.Context) (domainCache.Stats, error) {
	snap := s.cache.Stats()

	var ratio float64
	if total := snap.Hits + snap.Misses; total > 0 {
		ratio = float64(snap.Hits) / float64(total)
	}

	return domainCache.Stats{
		Hits:        snap.Hits,
		Misses:      snap.Misses,
		Writes:      snap.Writes,
		StoreErrors: snap.StoreErrors,
		HitRatio:    ratio,
		Uptime:      humanize.RelTime(snap.StartedAt, time.Now(), "", ""),
		Backend:     s.backend,
	}, nil
}
