package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/sales"
	"github.com/mirtechlab/mt-analytics/pkg/timewindow"
)

type SalesGormRepository struct {
	db *gorm.DB
}

func NewSalesGormRepository(db *gorm.DB) *SalesGormRepository {
	return &SalesGormRepository{db: db}
}

func (r *SalesGormRepository) Find(ctx context.Context, filter sales.Filter) ([]sales.FactSale, error) {
	tx := r.db.WithContext(ctx).Model(&sales.FactSale{})

	if filter.ProductCategory != nil {
		tx = ciLike(tx, "product_category", *filter.ProductCategory)
	}
	if filter.OrderStatus != nil {
		tx = tx.Where("order_status = ?", *filter.OrderStatus)
	}
	if filter.TransactionStatus != nil {
		tx = tx.Where("transaction_status = ?", *filter.TransactionStatus)
	}
	if filter.PaymentMethod != nil {
		tx = tx.Where("transaction_payment_method = ?", *filter.PaymentMethod)
	}
	if filter.UserEmail != nil {
		tx = ciLike(tx, "user_email", *filter.UserEmail)
	}
	if filter.MinPrice != nil {
		tx = tx.Where("product_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		tx = tx.Where("product_price <= ?", *filter.MaxPrice)
	}
	if filter.MinQuantity != nil {
		tx = tx.Where("order_item_quantity >= ?", *filter.MinQuantity)
	}

	tx = r.applyWindow(tx, filter.Period, filter.FromDate)

	var facts []sales.FactSale
	if err := paginate(tx, filter.Skip, filter.Limit).Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

func (r *SalesGormRepository) Search(ctx context.Context, filter sales.SearchFilter) ([]sales.FactSale, error) {
	tx := ciLike(r.db.WithContext(ctx).Model(&sales.FactSale{}), "product_name", filter.Query)
	tx = r.applyWindow(tx, filter.Period, nil)

	var facts []sales.FactSale
	if err := paginate(tx, filter.Skip, filter.Limit).Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

// applyWindow translates the period token into a lower bound on the order
// date. Unrecognized tokens apply no filter (lenient by decision, see /all
// docs); from_date is a fallback honored only when period is absent, and
// unparseable dates are silently ignored.
func (r *SalesGormRepository) applyWindow(tx *gorm.DB, period, fromDate *string) *gorm.DB {
	if period != nil {
		if start, ok := timewindow.Start(time.Now().UTC(), *period); ok {
			return tx.Where("order_created_at >= ?", start)
		}
		return tx
	}
	if fromDate != nil {
		if start, err := time.Parse(time.RFC3339, *fromDate); err == nil {
			return tx.Where("order_created_at >= ?", start)
		}
		if start, err := time.Parse("2006-01-02", *fromDate); err == nil {
			return tx.Where("order_created_at >= ?", start)
		}
	}
	return tx
}
