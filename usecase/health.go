package usecase

import (
	"context"
	"time"

	"gorm.io/gorm"

	domainHealth "github.com/mirtechlab/mt-analytics/domains/health"
)

type healthService struct {
	db *gorm.DB

	// cachePing probes the external cache store; nil means the in-process
	// store is configured and the probe trivially succeeds.
	cachePing func(ctx context.Context) error
}

func NewHealthService(db *gorm.DB, cachePing func(ctx context.Context) error) domainHealth.IHealthUsecase {
	return &healthService{db: db, cachePing: cachePing}
}

// Check probes both backing services. A dead database makes the report
// ERROR; a dead cache only degrades it, requests fall back to direct
// queries.
func (s *healthService) Check(ctx context.Context) domainHealth.Report {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	report := domainHealth.Report{
		Status:   domainHealth.StatusOk,
		Database: domainHealth.Component{Status: domainHealth.StatusOk},
		Cache:    domainHealth.Component{Status: domainHealth.StatusOk},
	}

	if err := s.pingDatabase(ctx); err != nil {
		report.Database = domainHealth.Component{
			Status:  domainHealth.StatusError,
			Message: err.Error(),
		}
		report.Status = domainHealth.StatusError
	}

	if s.cachePing == nil {
		report.Cache.Message = "in-process store"
	} else if err := s.cachePing(ctx); err != nil {
		report.Cache = domainHealth.Component{
			Status:  domainHealth.StatusError,
			Message: err.Error(),
		}
		if report.Status == domainHealth.StatusOk {
			report.Status = domainHealth.StatusDegraded
		}
	}

	return report
}

func (s *healthService) pingDatabase(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
