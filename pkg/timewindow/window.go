// Package timewindow maps the historical window tokens accepted by the
// reporting endpoints (?period=...) to fixed durations.
package timewindow

import "time"

const (
	Week        = "week"
	TwoWeeks    = "2weeks"
	Month       = "month"
	ThreeMonths = "3months"
	SixMonths   = "6months"
	NineMonths  = "9months"
	OneYear     = "1year"
)

var durations = map[string]time.Duration{
	Week:        7 * 24 * time.Hour,
	TwoWeeks:    14 * 24 * time.Hour,
	Month:       30 * 24 * time.Hour,
	ThreeMonths: 90 * 24 * time.Hour,
	SixMonths:   180 * 24 * time.Hour,
	NineMonths:  270 * 24 * time.Hour,
	OneYear:     365 * 24 * time.Hour,
}

// ordered from shortest to longest, the order reporting responses use
var ordered = []string{Week, TwoWeeks, Month, ThreeMonths, SixMonths, NineMonths, OneYear}

// Duration returns the fixed duration for a window token. ok is false for
// unrecognized tokens; callers treat those leniently (no window filter)
// rather than rejecting the request.
func Duration(token string) (time.Duration, bool) {
	d, ok := durations[token]
	return d, ok
}

// Known reports whether token is one of the seven window tokens.
func Known(token string) bool {
	_, ok := durations[token]
	return ok
}

// All returns every window token, shortest first.
func All() []string {
	out := make([]string, len(ordered))
	copy(out, ordered)
	return out
}

// Start returns the inclusive lower bound of the window ending at now.
// For unrecognized tokens it returns now and false unchanged semantics apply
// at the call site.
func Start(now time.Time, token string) (time.Time, bool) {
	d, ok := durations[token]
	if !ok {
		return now, false
	}
	return now.Add(-d), true
}
