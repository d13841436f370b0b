package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	domainStats "github.com/mirtechlab/mt-analytics/domains/stats"
	"github.com/mirtechlab/mt-analytics/querycache"
)

type chartCall struct {
	period string
	start  time.Time
}

type fakeStatsRepo struct {
	chartCalls   []chartCall
	summaryCalls int
}

func (f *fakeStatsRepo) Overview(context.Context) (domainStats.Overview, error) {
	return domainStats.Overview{TotalUsers: 42}, nil
}

func (f *fakeStatsRepo) Charts(_ context.Context, period string, start time.Time) (domainStats.ChartStats, error) {
	f.chartCalls = append(f.chartCalls, chartCall{period: period, start: start})
	return domainStats.ChartStats{
		Period:    period,
		StartDate: start.Format(time.RFC3339),
	}, nil
}

func (f *fakeStatsRepo) SummaryWindow(_ context.Context, period string, start, now time.Time) (domainStats.Summary, error) {
	f.summaryCalls++
	return domainStats.Summary{
		Period:       period,
		TotalRevenue: 1234.56,
		StartDate:    start.Format(time.RFC3339),
		EndDate:      now.Format(time.RFC3339),
	}, nil
}

func newStatsFixture(t *testing.T) (*statsService, *fakeStatsRepo) {
	t.Helper()
	repo := &fakeStatsRepo{}
	cache := querycache.New(querycache.NewMemoryStore(), querycache.Policy{})
	svc := NewStatsService(repo, cache).(*statsService)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestChartsDefaultsToWeek(t *testing.T) {
	svc, repo := newStatsFixture(t)

	payload, err := svc.Charts(context.Background(), "")
	if err != nil {
		t.Fatalf("Charts: %v", err)
	}

	var out domainStats.ChartStats
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Period != "week" {
		t.Errorf("period = %q, want week", out.Period)
	}

	wantStart := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	if len(repo.chartCalls) != 1 || !repo.chartCalls[0].start.Equal(wantStart) {
		t.Errorf("chart calls = %+v, want one starting at %s", repo.chartCalls, wantStart)
	}
}

func TestChartsUnknownPeriodFiltersAsWeekButKeepsOwnKey(t *testing.T) {
	svc, repo := newStatsFixture(t)
	ctx := context.Background()

	payload, err := svc.Charts(ctx, "decade")
	if err != nil {
		t.Fatalf("Charts: %v", err)
	}

	var out domainStats.ChartStats
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Period != "decade" {
		t.Errorf("period = %q, want the token echoed back", out.Period)
	}

	wantStart := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	if !repo.chartCalls[0].start.Equal(wantStart) {
		t.Errorf("start = %s, want the week window %s", repo.chartCalls[0].start, wantStart)
	}

	// a real week request must not reuse the unknown token's entry
	if _, err := svc.Charts(ctx, "week"); err != nil {
		t.Fatalf("Charts week: %v", err)
	}
	if len(repo.chartCalls) != 2 {
		t.Errorf("chart calls = %d, want a fresh computation for week", len(repo.chartCalls))
	}
}

func TestChartsSecondCallHitsCache(t *testing.T) {
	svc, repo := newStatsFixture(t)
	ctx := context.Background()

	first, err := svc.Charts(ctx, "month")
	if err != nil {
		t.Fatalf("Charts: %v", err)
	}
	second, err := svc.Charts(ctx, "month")
	if err != nil {
		t.Fatalf("Charts: %v", err)
	}

	if len(repo.chartCalls) != 1 {
		t.Errorf("chart calls = %d, want 1", len(repo.chartCalls))
	}
	if string(first) != string(second) {
		t.Error("hit payload differs from miss payload")
	}
}

func TestSummaryKnownWindow(t *testing.T) {
	svc, repo := newStatsFixture(t)

	payload, err := svc.Summary(context.Background(), "month")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	var out domainStats.Summary
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Period != "month" {
		t.Errorf("period = %q, want month", out.Period)
	}
	if repo.summaryCalls != 1 {
		t.Errorf("summary calls = %d, want 1", repo.summaryCalls)
	}
}

func TestSummaryEmptyPeriodReturnsAllWindows(t *testing.T) {
	svc, repo := newStatsFixture(t)

	payload, err := svc.Summary(context.Background(), "")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"week", "2weeks", "month", "3months", "6months", "9months", "1year"}
	if len(out) != len(want) {
		t.Fatalf("windows = %d, want %d", len(out), len(want))
	}
	for _, token := range want {
		entry, ok := out[token]
		if !ok {
			t.Fatalf("missing window %q", token)
		}
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil {
			t.Fatalf("unmarshal %q: %v", token, err)
		}
		// the map key carries the window, entries leave period out
		if _, present := fields["period"]; present {
			t.Errorf("window %q carries a period field", token)
		}
	}

	if repo.summaryCalls != len(want) {
		t.Errorf("summary calls = %d, want %d", repo.summaryCalls, len(want))
	}
}

func TestSummaryUnknownPeriodReturnsAllWindows(t *testing.T) {
	svc, repo := newStatsFixture(t)

	payload, err := svc.Summary(context.Background(), "forever")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	var out map[string]domainStats.Summary
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 7 {
		t.Errorf("windows = %d, want 7", len(out))
	}

	// cached under its own key, a second call is a hit
	if _, err := svc.Summary(context.Background(), "forever"); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if repo.summaryCalls != 7 {
		t.Errorf("summary calls = %d, want 7", repo.summaryCalls)
	}
}
