package app

import "context"

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// RuntimeConfig is the non-secret settings slice exposed by /config for
// operational inspection.
type RuntimeConfig struct {
	Environment     string `json:"environment"`
	DBPoolSize      int    `json:"db_pool_size"`
	DBMaxOverflow   int    `json:"db_max_overflow"`
	CacheDefaultTTL int    `json:"cache_default_ttl_seconds"`
	CachePreload    bool   `json:"cache_preload_enabled"`
	PaginationLimit int    `json:"pagination_default_limit"`
	PaginationMax   int    `json:"pagination_max_limit"`
}

type IAppUsecase interface {
	Info(ctx context.Context) Info
	RuntimeConfig(ctx context.Context) RuntimeConfig
}
