package querycache

import (
	"time"

	"github.com/mirtechlab/mt-analytics/pkg/timewindow"
)

const (
	// LongTTL covers the three longest historical windows: aggregates that
	// far back change negligibly within a day.
	LongTTL = 24 * time.Hour

	// MediumTTL covers month-scale windows.
	MediumTTL = time.Hour

	// DefaultShortTTL applies when no window (or a short/unknown one) was
	// requested. Overridable through Policy.DefaultTTL.
	DefaultShortTTL = 10 * time.Minute
)

// Policy selects a TTL from the historical window a request asked for.
// It is a pure function of that token only: payload size, query cost and
// store pressure deliberately play no part.
type Policy struct {
	// DefaultTTL replaces DefaultShortTTL when positive.
	DefaultTTL time.Duration
}

// TTLFor applies the ordered rules, first match wins:
// long windows get 24h, medium windows 1h, everything else (no window,
// short window, unrecognized token) the short default.
func (p Policy) TTLFor(window string) time.Duration {
	switch window {
	case timewindow.SixMonths, timewindow.NineMonths, timewindow.OneYear:
		return LongTTL
	case timewindow.Month, timewindow.ThreeMonths:
		return MediumTTL
	}
	if p.DefaultTTL > 0 {
		return p.DefaultTTL
	}
	return DefaultShortTTL
}
