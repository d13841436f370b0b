package cache

import "context"

// Stats is the read-only /cache/stats payload. There is deliberately no
// flush operation: entries leave the store by TTL expiry only.
type Stats struct {
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	Writes      uint64  `json:"writes"`
	StoreErrors uint64  `json:"store_errors"`
	HitRatio    float64 `json:"hit_ratio"`
	Uptime      string  `json:"uptime"`
	Backend     string  `json:"backend"`
}

type ICacheUsecase interface {
	Stats(ctx context.Context) (Stats, error)
}
