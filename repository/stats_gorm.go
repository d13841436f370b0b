package repository

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/order"
	"github.com/mirtechlab/mt-analytics/domains/product"
	"github.com/mirtechlab/mt-analytics/domains/sales"
	"github.com/mirtechlab/mt-analytics/domains/stats"
	"github.com/mirtechlab/mt-analytics/domains/transaction"
	"github.com/mirtechlab/mt-analytics/domains/user"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) Overview(ctx context.Context) (stats.Overview, error) {
	db := r.db.WithContext(ctx)
	out := stats.Overview{OrdersByStatus: make(map[string]int64, len(stats.TrackedOrderStatuses))}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&user.User{}, &out.TotalUsers},
		{&product.Product{}, &out.TotalProducts},
		{&order.Order{}, &out.TotalOrders},
		{&transaction.Transaction{}, &out.TotalTransactions},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return stats.Overview{}, err
		}
	}

	for _, status := range stats.TrackedOrderStatuses {
		var n int64
		if err := db.Model(&order.Order{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return stats.Overview{}, err
		}
		out.OrdersByStatus[status] = n
	}
	return out, nil
}

func (r *StatsGormRepository) Charts(ctx context.Context, period string, start time.Time) (stats.ChartStats, error) {
	db := r.db.WithContext(ctx)
	out := stats.ChartStats{
		Period:    period,
		StartDate: start.Format(time.RFC3339),
	}

	err := db.Model(&sales.FactSale{}).
		Select("DATE(order_created_at) AS date, "+
			"COALESCE(SUM(order_total_amount), 0) AS revenue, "+
			"COUNT(DISTINCT order_id) AS orders").
		Where("order_created_at >= ?", start).
		Group("DATE(order_created_at)").
		Order("date").
		Scan(&out.RevenueByDay).Error
	if err != nil {
		return stats.ChartStats{}, err
	}

	err = db.Model(&sales.FactSale{}).
		Select("DATE(transaction_timestamp) AS date, COUNT(transaction_id) AS count").
		Where("transaction_timestamp >= ?", start).
		Group("DATE(transaction_timestamp)").
		Order("date").
		Scan(&out.TransactionsByDay).Error
	if err != nil {
		return stats.ChartStats{}, err
	}

	if out.PaymentMethods, err = r.factBreakdown(ctx, "transaction_payment_method", "transaction_timestamp", start, false); err != nil {
		return stats.ChartStats{}, err
	}
	if out.OrderStatuses, err = r.factBreakdown(ctx, "order_status", "order_created_at", start, true); err != nil {
		return stats.ChartStats{}, err
	}
	if out.TransactionStatuses, err = r.factBreakdown(ctx, "transaction_status", "transaction_timestamp", start, false); err != nil {
		return stats.ChartStats{}, err
	}
	return out, nil
}

// factBreakdown groups the fact table by one label column inside a window.
// Order rows are denormalized once per item, so order-scoped breakdowns
// count distinct orders instead of raw rows.
func (r *StatsGormRepository) factBreakdown(ctx context.Context, column, timeColumn string, start time.Time, distinctOrders bool) (map[string]int64, error) {
	counter := "COUNT(*)"
	if distinctOrders {
		counter = "COUNT(DISTINCT order_id)"
	}

	var rows []struct {
		Label string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&sales.FactSale{}).
		Select(column+" AS label, "+counter+" AS count").
		Where(timeColumn+" >= ?", start).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Count
	}
	return out, nil
}

type windowTotals struct {
	Revenue      float64
	Orders       int64
	Transactions int64
	Users        int64
}

func (r *StatsGormRepository) SummaryWindow(ctx context.Context, period string, start, now time.Time) (stats.Summary, error) {
	current, err := r.windowTotals(ctx, start, now)
	if err != nil {
		return stats.Summary{}, err
	}

	prevStart := start.Add(-now.Sub(start))
	previous, err := r.windowTotals(ctx, prevStart, start)
	if err != nil {
		return stats.Summary{}, err
	}

	avg := safeDiv(current.Revenue, current.Orders)
	prevAvg := safeDiv(previous.Revenue, previous.Orders)

	return stats.Summary{
		Period:            period,
		TotalRevenue:      current.Revenue,
		TotalOrders:       current.Orders,
		TotalTransactions: current.Transactions,
		TotalUsers:        current.Users,
		AvgOrderValue:     avg,
		StartDate:         start.Format(time.RFC3339),
		EndDate:           now.Format(time.RFC3339),
		Changes: stats.Changes{
			RevenueChangePercent:       percentChange(current.Revenue, previous.Revenue),
			OrdersChangePercent:        percentChange(float64(current.Orders), float64(previous.Orders)),
			TransactionsChangePercent:  percentChange(float64(current.Transactions), float64(previous.Transactions)),
			UsersChangePercent:         percentChange(float64(current.Users), float64(previous.Users)),
			AvgOrderValueChangePercent: percentChange(avg, prevAvg),
		},
	}, nil
}

// windowTotals aggregates [from, to) over the fact table. Orders and users
// are counted distinct because fact rows repeat per order item;
// transactions are window-bounded by their own timestamp.
func (r *StatsGormRepository) windowTotals(ctx context.Context, from, to time.Time) (windowTotals, error) {
	db := r.db.WithContext(ctx)

	var totals windowTotals
	err := db.Model(&sales.FactSale{}).
		Select("COALESCE(SUM(order_total_amount), 0) AS revenue, "+
			"COUNT(DISTINCT order_id) AS orders, "+
			"COUNT(DISTINCT user_id) AS users").
		Where("order_created_at >= ? AND order_created_at < ?", from, to).
		Scan(&totals).Error
	if err != nil {
		return windowTotals{}, err
	}

	err = db.Model(&sales.FactSale{}).
		Where("transaction_timestamp >= ? AND transaction_timestamp < ?", from, to).
		Count(&totals.Transactions).Error
	if err != nil {
		return windowTotals{}, err
	}
	return totals, nil
}

// percentChange returns the change from prev to current, rounded to two
// decimals, and 0 when prev is not positive.
func percentChange(current, prev float64) float64 {
	if prev <= 0 {
		return 0
	}
	return math.Round((current-prev)/prev*100*100) / 100
}

func safeDiv(revenue float64, orders int64) float64 {
	if orders <= 0 {
		return 0
	}
	return revenue / float64(orders)
}
