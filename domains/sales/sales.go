// Package sales holds the denormalized fact table joining every dimension
// (user, product, order, order item, transaction) into one row per sale
// event. Reporting endpoints read it instead of joining at query time.
package sales

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type FactSale struct {
	FactID uuid.UUID `gorm:"primaryKey;column:fact_id" json:"fact_id"`

	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	UserName      string    `gorm:"size:30" json:"user_name"`
	UserEmail     string    `gorm:"size:255" json:"user_email"`
	UserPhone     string    `gorm:"size:50" json:"user_phone"`
	UserAddress   string    `gorm:"type:text" json:"user_address"`
	UserCreatedAt time.Time `json:"user_created_at"`

	ProductID       uuid.UUID `gorm:"index" json:"product_id"`
	ProductName     string    `gorm:"size:255" json:"product_name"`
	ProductCategory string    `gorm:"size:100;index" json:"product_category"`
	ProductPrice    float64   `gorm:"type:decimal(10,2)" json:"product_price"`
	ProductStock    int       `json:"product_stock"`
	ProductRating   float64   `gorm:"type:decimal(3,2)" json:"product_rating"`

	OrderID          uuid.UUID `gorm:"index" json:"order_id"`
	OrderTotalAmount float64   `gorm:"type:decimal(12,2)" json:"order_total_amount"`
	OrderStatus      string    `gorm:"size:50;index" json:"order_status"`
	OrderCreatedAt   time.Time `gorm:"index" json:"order_created_at"`

	OrderItemID        uuid.UUID `json:"order_item_id"`
	OrderItemQuantity  int       `json:"order_item_quantity"`
	OrderItemUnitPrice float64   `gorm:"type:decimal(10,2)" json:"order_item_unit_price"`

	TransactionID            uuid.UUID `gorm:"index" json:"transaction_id"`
	TransactionAmount        float64   `gorm:"type:decimal(12,2)" json:"transaction_amount"`
	TransactionPaymentMethod string    `gorm:"size:50;index" json:"transaction_payment_method"`
	TransactionStatus        string    `gorm:"size:50;index" json:"transaction_status"`
	TransactionTimestamp     time.Time `gorm:"index" json:"transaction_timestamp"`
}

func (FactSale) TableName() string {
	return "fact_sales"
}

// Filter covers the /all listing. Period is the historical window token;
// unrecognized tokens apply no window filter. FromDate only applies when
// Period is absent.
type Filter struct {
	ProductCategory   *string
	OrderStatus       *string
	TransactionStatus *string
	PaymentMethod     *string
	UserEmail         *string
	MinPrice          *float64
	MaxPrice          *float64
	MinQuantity       *int
	Period            *string
	FromDate          *string
	Skip              int
	Limit             int
}

// SearchFilter covers /products/search over the fact table.
type SearchFilter struct {
	Query  string
	Period *string
	Skip   int
	Limit  int
}

type ISalesUsecase interface {
	ListAll(ctx context.Context, filter Filter) (json.RawMessage, error)
	Search(ctx context.Context, filter SearchFilter) (json.RawMessage, error)
}
