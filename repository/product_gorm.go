package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/product"
	"github.com/mirtechlab/mt-analytics/domains/sales"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Find(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	tx := r.db.WithContext(ctx).Model(&product.Product{})

	if filter.Category != nil {
		tx = ciLike(tx, "category", *filter.Category)
	}
	if filter.Name != nil {
		tx = ciLike(tx, "name", *filter.Name)
	}
	if filter.MinPrice != nil {
		tx = tx.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		tx = tx.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		tx = tx.Where("rating >= ?", *filter.MinRating)
	}
	if filter.InStock != nil {
		if *filter.InStock {
			tx = tx.Where("stock > 0")
		} else {
			tx = tx.Where("stock = 0")
		}
	}

	var products []product.Product
	if err := paginate(tx, filter.Skip, filter.Limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).First(&p, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p *product.Product) error {
	if p.ProductID == uuid.Nil {
		p.ProductID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductGormRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&product.Product{}).
		Where("product_id = ?", id).
		Updates(changes)
	return result.RowsAffected, result.Error
}

func (r *ProductGormRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&product.Product{}, "product_id = ?", id)
	return result.RowsAffected, result.Error
}

// Stats builds the per-product aggregate card from the fact table. Returns
// nil when the product itself does not exist.
func (r *ProductGormRepository) Stats(ctx context.Context, id uuid.UUID) (*product.Stats, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var totals struct {
		Revenue      float64
		Orders       int64
		Transactions int64
		Quantity     int64
	}
	err = db.Model(&sales.FactSale{}).
		Select("COALESCE(SUM(order_total_amount), 0) AS revenue, "+
			"COUNT(DISTINCT order_id) AS orders, "+
			"COUNT(DISTINCT transaction_id) AS transactions, "+
			"COALESCE(SUM(order_item_quantity), 0) AS quantity").
		Where("product_id = ?", id).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	result := &product.Stats{
		Product:           *p,
		TotalRevenue:      totals.Revenue,
		TotalOrders:       totals.Orders,
		TotalTransactions: totals.Transactions,
		TotalQuantitySold: totals.Quantity,
	}
	if totals.Orders > 0 {
		result.AvgOrderValue = totals.Revenue / float64(totals.Orders)
	}

	if result.PaymentMethods, err = r.breakdown(ctx, id, "transaction_payment_method"); err != nil {
		return nil, err
	}
	if result.OrderStatuses, err = r.breakdown(ctx, id, "order_status"); err != nil {
		return nil, err
	}
	if result.TransactionStatuses, err = r.breakdown(ctx, id, "transaction_status"); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ProductGormRepository) breakdown(ctx context.Context, id uuid.UUID, column string) (map[string]int, error) {
	var rows []struct {
		Label string
		Count int
	}
	err := r.db.WithContext(ctx).Model(&sales.FactSale{}).
		Select(column+" AS label, COUNT(*) AS count").
		Where("product_id = ?", id).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Count
	}
	return out, nil
}
