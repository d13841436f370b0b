package usecase

import (
	"context"
	"encoding/json"
	"time"

	domainStats "github.com/mirtechlab/mt-analytics/domains/stats"
	"github.com/mirtechlab/mt-analytics/pkg/timewindow"
	"github.com/mirtechlab/mt-analytics/querycache"
	"github.com/mirtechlab/mt-analytics/repository"
)

type statsService struct {
	repo  repository.IStatsRepository
	cache *querycache.Cache

	// now is swapped in tests for deterministic window bounds.
	now func() time.Time
}

func NewStatsService(repo repository.IStatsRepository, cache *querycache.Cache) domainStats.IStatsUsecase {
	return &statsService{repo: repo, cache: cache, now: time.Now}
}

// Overview is served straight from the database: it backs a dashboard
// header that is expected to reflect writes immediately.
func (s *statsService) Overview(ctx context.Context) (domainStats.Overview, error) {
	return s.repo.Overview(ctx)
}

// Charts serves the pre-aggregated chart payload. An unrecognized period
// filters like a week but is echoed back and cached under its own key, so
// two clients asking for different made-up tokens never share an entry.
func (s *statsService) Charts(ctx context.Context, period string) (json.RawMessage, error) {
	if period == "" {
		period = timewindow.Week
	}

	params := querycache.Params{"period": period}

	payload, _, err := s.cache.GetOrCompute(ctx, "chart_stats", params, func(ctx context.Context) (any, error) {
		filter := period
		if !timewindow.Known(filter) {
			filter = timewindow.Week
		}
		start, _ := timewindow.Start(s.now().UTC(), filter)
		return s.repo.Charts(ctx, period, start)
	})
	return payload, err
}

func (s *statsService) Summary(ctx context.Context, period string) (json.RawMessage, error) {
	var params querycache.Params
	if period == "" {
		params = querycache.Params{"period": nil}
	} else {
		params = querycache.Params{"period": period}
	}

	payload, _, err := s.cache.GetOrCompute(ctx, "summary_stats", params, func(ctx context.Context) (any, error) {
		now := s.now().UTC()
		if start, ok := timewindow.Start(now, period); ok {
			return s.repo.SummaryWindow(ctx, period, start, now)
		}
		return s.allWindows(ctx, now)
	})
	return payload, err
}

// allWindows builds the no-period payload: one summary per window token,
// keyed by token, with the per-entry period left out since the key carries
// it.
func (s *statsService) allWindows(ctx context.Context, now time.Time) (map[string]domainStats.Summary, error) {
	out := make(map[string]domainStats.Summary, len(timewindow.All()))
	for _, token := range timewindow.All() {
		start, _ := timewindow.Start(now, token)
		summary, err := s.repo.SummaryWindow(ctx, "", start, now)
		if err != nil {
			return nil, err
		}
		out[token] = summary
	}
	return out, nil
}
