package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/order"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Find(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	tx := r.db.WithContext(ctx).Model(&order.Order{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if filter.UserID != nil {
		tx = tx.Where("user_id = ?", *filter.UserID)
	}
	if filter.MinAmount != nil {
		tx = tx.Where("total_amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		tx = tx.Where("total_amount <= ?", *filter.MaxAmount)
	}

	var orders []order.Order
	if err := paginate(tx, filter.Skip, filter.Limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) Items(ctx context.Context, id uuid.UUID) ([]order.Item, error) {
	var items []order.Item
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
