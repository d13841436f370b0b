package usecase

import (
	"context"
	"encoding/json"

	domainSales "github.com/mirtechlab/mt-analytics/domains/sales"
	"github.com/mirtechlab/mt-analytics/querycache"
	"github.com/mirtechlab/mt-analytics/repository"
	"github.com/mirtechlab/mt-analytics/validations"
)

type salesService struct {
	repo  repository.ISalesRepository
	cache *querycache.Cache
}

func NewSalesService(repo repository.ISalesRepository, cache *querycache.Cache) domainSales.ISalesUsecase {
	return &salesService{repo: repo, cache: cache}
}

func (s *salesService) ListAll(ctx context.Context, filter domainSales.Filter) (json.RawMessage, error) {
	params := querycache.Params{
		"product_category":   filter.ProductCategory,
		"order_status":       filter.OrderStatus,
		"transaction_status": filter.TransactionStatus,
		"payment_method":     filter.PaymentMethod,
		"user_email":         filter.UserEmail,
		"min_price":          filter.MinPrice,
		"max_price":          filter.MaxPrice,
		"min_quantity":       filter.MinQuantity,
		"period":             filter.Period,
		"from_date":          filter.FromDate,
		"skip":               filter.Skip,
		"limit":              filter.Limit,
	}

	payload, _, err := s.cache.GetOrCompute(ctx, "fact_sales", params, func(ctx context.Context) (any, error) {
		return s.repo.Find(ctx, filter)
	})
	return payload, err
}

func (s *salesService) Search(ctx context.Context, filter domainSales.SearchFilter) (json.RawMessage, error) {
	if err := validations.ValidateProductSearch(ctx, filter); err != nil {
		return nil, err
	}

	params := querycache.Params{
		"query":  filter.Query,
		"period": filter.Period,
		"skip":   filter.Skip,
		"limit":  filter.Limit,
	}

	payload, _, err := s.cache.GetOrCompute(ctx, "product_search", params, func(ctx context.Context) (any, error) {
		return s.repo.Search(ctx, filter)
	})
	return payload, err
}
