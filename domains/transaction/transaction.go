package transaction

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	TransactionID uuid.UUID `gorm:"primaryKey;column:transaction_id" json:"transaction_id"`
	OrderID       uuid.UUID `gorm:"index" json:"order_id"`
	Amount        float64   `gorm:"type:decimal(12,2)" json:"amount"`
	PaymentMethod string    `gorm:"size:50;index" json:"payment_method"`
	Status        string    `gorm:"size:50;index" json:"status"`
	Timestamp     time.Time `gorm:"index" json:"timestamp"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type Filter struct {
	Status        *string
	PaymentMethod *string
	OrderID       *uuid.UUID
	MinAmount     *float64
	MaxAmount     *float64
	Skip          int
	Limit         int
}

type ITransactionUsecase interface {
	List(ctx context.Context, filter Filter) (json.RawMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (Transaction, error)
}
