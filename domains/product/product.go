package product

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

type Product struct {
	ProductID uuid.UUID `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name      string    `gorm:"size:255;index" json:"name"`
	Category  string    `gorm:"size:100;index" json:"category"`
	Price     float64   `gorm:"type:decimal(10,2)" json:"price"`
	Stock     int       `json:"stock"`
	Rating    float64   `gorm:"type:decimal(3,2)" json:"rating"`
}

func (Product) TableName() string {
	return "products"
}

type Filter struct {
	Category  *string
	Name      *string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	InStock   *bool
	Skip      int
	Limit     int
}

type CreateRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	Rating   *float64 `json:"rating"`
}

// UpdateRequest carries a partial update: only non-nil fields change.
type UpdateRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Rating   *float64 `json:"rating"`
}

// Stats is the per-product aggregate card built from the fact table.
type Stats struct {
	Product             Product        `json:"product"`
	TotalRevenue        float64        `json:"total_revenue"`
	TotalOrders         int64          `json:"total_orders"`
	TotalTransactions   int64          `json:"total_transactions"`
	TotalQuantitySold   int64          `json:"total_quantity_sold"`
	AvgOrderValue       float64        `json:"avg_order_value"`
	PaymentMethods      map[string]int `json:"payment_methods"`
	OrderStatuses       map[string]int `json:"order_statuses"`
	TransactionStatuses map[string]int `json:"transaction_statuses"`
}

type IProductUsecase interface {
	List(ctx context.Context, filter Filter) (json.RawMessage, error)
	Stats(ctx context.Context, id uuid.UUID) (Stats, error)
	Create(ctx context.Context, req CreateRequest) (Product, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
