package usecase

import (
	"context"

	"github.com/mirtechlab/mt-analytics/core/config"
	domainApp "github.com/mirtechlab/mt-analytics/domains/app"
)

type appService struct {
	cfg *config.Config
}

func NewAppService(cfg *config.Config) domainApp.IAppUsecase {
	return &appService{cfg: cfg}
}

func (s *appService) Info(_ context.Context) domainApp.Info {
	return domainApp.Info{
		Title:   config.AppTitle,
		Version: config.AppVersion,
	}
}

func (s *appService) RuntimeConfig(_ context.Context) domainApp.RuntimeConfig {
	return domainApp.RuntimeConfig{
		Environment:     s.cfg.App.Environment,
		DBPoolSize:      s.cfg.Database.PoolSize,
		DBMaxOverflow:   s.cfg.Database.MaxOverflow,
		CacheDefaultTTL: s.cfg.Cache.DefaultTTLSeconds,
		CachePreload:    s.cfg.Cache.PreloadEnabled,
		PaginationLimit: s.cfg.Pagination.DefaultLimit,
		PaginationMax:   s.cfg.Pagination.MaxLimit,
	}
}
