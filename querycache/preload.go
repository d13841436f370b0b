package querycache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mirtechlab/mt-analytics/pkg/timewindow"
)

// PreloadWindows are the windows worth warming: the aggregates behind them
// scan up to a year of fact rows and the results barely move within a day.
var PreloadWindows = []string{timewindow.SixMonths, timewindow.NineMonths, timewindow.OneYear}

// PreloadJob is one query shape the preloader warms per window.
type PreloadJob struct {
	// Endpoint is the cache namespace, identical to the one the live
	// endpoint derives so the stored key byte-matches a real request's.
	Endpoint string

	// Params returns the exact parameter set the live endpoint would use
	// for the given window.
	Params func(window string) Params

	// Compute runs the underlying query for the given window.
	Compute func(ctx context.Context, window string) (any, error)

	// AlwaysRefresh recomputes even when a live entry exists. Only the
	// chart shape sets it: chart aggregation is comparatively cheap and its
	// payload is wanted fresh on every boot, while the listing and summary
	// shapes skip recomputation when warm.
	AlwaysRefresh bool
}

// Preloader warms the cache for the known-expensive historical aggregates
// once at process startup, so the first real request for them is a hit.
//
// It is launched as `go preloader.Run(ctx)` and owns its dependencies
// outright: a dedicated source-of-truth session inside the job closures and
// a reference to the shared cache facade. It holds no lock request handling
// could block on, and it never affects startup success.
type Preloader struct {
	cache   *Cache
	jobs    []PreloadJob
	windows []string
}

func NewPreloader(cache *Cache, jobs []PreloadJob) *Preloader {
	return &Preloader{
		cache:   cache,
		jobs:    jobs,
		windows: PreloadWindows,
	}
}

// Run warms every (window, job) pair in sequence. A failing pair is logged
// and skipped; the rest proceed. Safe to run on every restart: warm entries
// are left alone except for always-refresh jobs.
func (p *Preloader) Run(ctx context.Context) {
	started := time.Now()
	logrus.Infof("[PRELOAD] Warming %d windows x %d shapes...", len(p.windows), len(p.jobs))

	var warmed, skipped, failed int
	for _, window := range p.windows {
		for _, job := range p.jobs {
			select {
			case <-ctx.Done():
				logrus.Infof("[PRELOAD] Aborted by shutdown after %d entries", warmed)
				return
			default:
			}

			switch p.runPair(ctx, job, window) {
			case pairWarmed:
				warmed++
			case pairSkipped:
				skipped++
			case pairFailed:
				failed++
			}
		}
	}

	logrus.Infof("[PRELOAD] Done in %s: %d warmed, %d already live, %d failed",
		time.Since(started).Round(time.Millisecond), warmed, skipped, failed)
}

type pairResult int

const (
	pairWarmed pairResult = iota
	pairSkipped
	pairFailed
)

func (p *Preloader) runPair(ctx context.Context, job PreloadJob, window string) pairResult {
	params := job.Params(window)

	if !job.AlwaysRefresh && p.cache.Has(ctx, job.Endpoint, params) {
		logrus.Debugf("[PRELOAD] %s/%s already cached, skipping", job.Endpoint, window)
		return pairSkipped
	}

	compute := func(ctx context.Context) (any, error) {
		return job.Compute(ctx, window)
	}

	if _, err := p.cache.Refresh(ctx, job.Endpoint, params, compute, WithTTL(LongTTL)); err != nil {
		logrus.Errorf("[PRELOAD] Failed to warm %s/%s: %v", job.Endpoint, window, err)
		return pairFailed
	}

	logrus.Infof("[PRELOAD] Warmed %s/%s", job.Endpoint, window)
	return pairWarmed
}
