package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/transaction"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) Find(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error) {
	tx := r.db.WithContext(ctx).Model(&transaction.Transaction{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if filter.PaymentMethod != nil {
		tx = tx.Where("payment_method = ?", *filter.PaymentMethod)
	}
	if filter.OrderID != nil {
		tx = tx.Where("order_id = ?", *filter.OrderID)
	}
	if filter.MinAmount != nil {
		tx = tx.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		tx = tx.Where("amount <= ?", *filter.MaxAmount)
	}

	var transactions []transaction.Transaction
	if err := paginate(tx, filter.Skip, filter.Limit).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	var t transaction.Transaction
	if err := r.db.WithContext(ctx).First(&t, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
