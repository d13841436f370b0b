package order

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Order struct {
	OrderID     uuid.UUID `gorm:"primaryKey;column:order_id" json:"order_id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	TotalAmount float64   `gorm:"type:decimal(12,2)" json:"total_amount"`
	Status      string    `gorm:"size:50;index" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

type Item struct {
	OrderItemID uuid.UUID `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID     uuid.UUID `gorm:"index" json:"order_id"`
	ProductID   uuid.UUID `gorm:"index" json:"product_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `gorm:"type:decimal(10,2)" json:"unit_price"`
}

func (Item) TableName() string {
	return "order_items"
}

type Filter struct {
	Status    *string
	UserID    *uuid.UUID
	MinAmount *float64
	MaxAmount *float64
	Skip      int
	Limit     int
}

type IOrderUsecase interface {
	List(ctx context.Context, filter Filter) (json.RawMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	Items(ctx context.Context, id uuid.UUID) ([]Item, error)
}
