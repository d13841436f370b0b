package stats

import (
	"context"
	"encoding/json"
)

// Overview is the uncached /stats payload.
type Overview struct {
	TotalUsers        int64            `json:"total_users"`
	TotalProducts     int64            `json:"total_products"`
	TotalOrders       int64            `json:"total_orders"`
	TotalTransactions int64            `json:"total_transactions"`
	OrdersByStatus    map[string]int64 `json:"orders_by_status"`
}

// TrackedOrderStatuses are the statuses /stats always reports, even at zero.
var TrackedOrderStatuses = []string{"pending", "processing", "shipped", "delivered", "cancelled"}

// DayRevenue is one point of the revenue line chart.
type DayRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// DayCount is one point of the transactions-per-day chart.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ChartStats is the pre-aggregated /stats/charts payload.
type ChartStats struct {
	Period              string           `json:"period"`
	StartDate           string           `json:"start_date"`
	RevenueByDay        []DayRevenue     `json:"revenue_by_day"`
	TransactionsByDay   []DayCount       `json:"transactions_by_day"`
	PaymentMethods      map[string]int64 `json:"payment_methods"`
	OrderStatuses       map[string]int64 `json:"order_statuses"`
	TransactionStatuses map[string]int64 `json:"transaction_statuses"`
}

// Changes compares a window against the immediately preceding window of
// equal length; each percentage is rounded to 2 decimals and 0 when the
// previous value is 0.
type Changes struct {
	RevenueChangePercent       float64 `json:"revenue_change_percent"`
	OrdersChangePercent        float64 `json:"orders_change_percent"`
	TransactionsChangePercent  float64 `json:"transactions_change_percent"`
	UsersChangePercent         float64 `json:"users_change_percent"`
	AvgOrderValueChangePercent float64 `json:"avg_order_value_change_percent"`
}

// Summary is the /stats/summary payload for one window.
type Summary struct {
	Period            string  `json:"period,omitempty"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int64   `json:"total_orders"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalUsers        int64   `json:"total_users"`
	AvgOrderValue     float64 `json:"avg_order_value"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	Changes           Changes `json:"changes"`
}

type IStatsUsecase interface {
	Overview(ctx context.Context) (Overview, error)
	// Charts serves /stats/charts through the cache. An unrecognized
	// period filters as a week but is echoed back and keyed as given.
	Charts(ctx context.Context, period string) (json.RawMessage, error)
	// Summary serves /stats/summary. An empty or unrecognized period
	// returns the all-windows map instead of a single summary.
	Summary(ctx context.Context, period string) (json.RawMessage, error)
}
