package querycache

import (
	"testing"
	"time"
)

func TestPolicy_TTLFor(t *testing.T) {
	policy := Policy{}

	cases := []struct {
		window string
		want   time.Duration
	}{
		{"6months", 24 * time.Hour},
		{"9months", 24 * time.Hour},
		{"1year", 24 * time.Hour},
		{"month", time.Hour},
		{"3months", time.Hour},
		{"week", DefaultShortTTL},
		{"2weeks", DefaultShortTTL},
		{"", DefaultShortTTL},
		{"fortnight", DefaultShortTTL},
	}

	for _, c := range cases {
		t.Run("window="+c.window, func(t *testing.T) {
			got := policy.TTLFor(c.window)
			if got != c.want {
				t.Fatalf("TTLFor(%q) = %v, want %v", c.window, got, c.want)
			}
		})
	}
}

func TestPolicy_ShortDefaultStaysShort(t *testing.T) {
	for _, window := range []string{"", "week", "2weeks", "garbage"} {
		if ttl := (Policy{}).TTLFor(window); ttl > 10*time.Minute {
			t.Errorf("TTLFor(%q) = %v, exceeds the short ceiling", window, ttl)
		}
	}
}

func TestPolicy_ConfiguredDefault(t *testing.T) {
	policy := Policy{DefaultTTL: 5 * time.Minute}

	if got := policy.TTLFor(""); got != 5*time.Minute {
		t.Fatalf("TTLFor(\"\") = %v, want configured 5m", got)
	}
	// configured default never bleeds into the window rules
	if got := policy.TTLFor("1year"); got != 24*time.Hour {
		t.Fatalf("TTLFor(1year) = %v, want 24h", got)
	}
}
