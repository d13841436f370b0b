// Package repository implements the source-of-truth access behind every
// endpoint: GORM over PostgreSQL in production and SQLite for dev and
// tests. The cache facade fronts these queries; nothing in here knows
// about caching.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/order"
	"github.com/mirtechlab/mt-analytics/domains/product"
	"github.com/mirtechlab/mt-analytics/domains/sales"
	"github.com/mirtechlab/mt-analytics/domains/stats"
	"github.com/mirtechlab/mt-analytics/domains/transaction"
	"github.com/mirtechlab/mt-analytics/domains/user"
)

type IUserRepository interface {
	Find(ctx context.Context, filter user.Filter) ([]user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	OrdersByUser(ctx context.Context, id uuid.UUID) ([]order.Order, error)
}

type IProductRepository interface {
	Find(ctx context.Context, filter product.Filter) ([]product.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	Create(ctx context.Context, p *product.Product) error
	// Update applies only the given columns; it reports gorm.ErrRecordNotFound
	// semantics through the returned row count.
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Stats(ctx context.Context, id uuid.UUID) (*product.Stats, error)
}

type IOrderRepository interface {
	Find(ctx context.Context, filter order.Filter) ([]order.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Items(ctx context.Context, id uuid.UUID) ([]order.Item, error)
}

type ITransactionRepository interface {
	Find(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
}

type ISalesRepository interface {
	Find(ctx context.Context, filter sales.Filter) ([]sales.FactSale, error)
	Search(ctx context.Context, filter sales.SearchFilter) ([]sales.FactSale, error)
}

type IStatsRepository interface {
	Overview(ctx context.Context) (stats.Overview, error)
	Charts(ctx context.Context, period string, start time.Time) (stats.ChartStats, error)
	// SummaryWindow aggregates [start, now) plus the immediately preceding
	// window of equal length for the change percentages.
	SummaryWindow(ctx context.Context, period string, start, now time.Time) (stats.Summary, error)
}

// AllModels is the AutoMigrate set, shared by the rest, seed and migrate
// subcommands.
func AllModels() []any {
	return []any{
		&user.User{},
		&product.Product{},
		&order.Order{},
		&order.Item{},
		&transaction.Transaction{},
		&sales.FactSale{},
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
