package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/order"
	"github.com/mirtechlab/mt-analytics/domains/user"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Find(ctx context.Context, filter user.Filter) ([]user.User, error) {
	tx := r.db.WithContext(ctx).Model(&user.User{})

	if filter.Name != nil {
		tx = ciLike(tx, "name", *filter.Name)
	}
	if filter.Email != nil {
		tx = ciLike(tx, "email", *filter.Email)
	}
	if filter.Phone != nil {
		tx = ciLike(tx, "phone", *filter.Phone)
	}

	var users []user.User
	if err := paginate(tx, filter.Skip, filter.Limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) OrdersByUser(ctx context.Context, id uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
