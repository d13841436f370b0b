package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	domainProduct "github.com/mirtechlab/mt-analytics/domains/product"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/querycache"
	"github.com/mirtechlab/mt-analytics/repository"
	"github.com/mirtechlab/mt-analytics/validations"
)

type productService struct {
	repo  repository.IProductRepository
	cache *querycache.Cache
}

// NewProductService builds the product service. Mutations deliberately do
// not touch the cache: listings already stored keep serving until their TTL
// runs out.
func NewProductService(repo repository.IProductRepository, cache *querycache.Cache) domainProduct.IProductUsecase {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) List(ctx context.Context, filter domainProduct.Filter) (json.RawMessage, error) {
	params := querycache.Params{
		"category":   filter.Category,
		"name":       filter.Name,
		"min_price":  filter.MinPrice,
		"max_price":  filter.MaxPrice,
		"min_rating": filter.MinRating,
		"in_stock":   filter.InStock,
		"skip":       filter.Skip,
		"limit":      filter.Limit,
	}

	payload, _, err := s.cache.GetOrCompute(ctx, "products", params, func(ctx context.Context) (any, error) {
		return s.repo.Find(ctx, filter)
	})
	return payload, err
}

func (s *productService) Stats(ctx context.Context, id uuid.UUID) (domainProduct.Stats, error) {
	found, err := s.repo.Stats(ctx, id)
	if err != nil {
		return domainProduct.Stats{}, err
	}
	if found == nil {
		return domainProduct.Stats{}, pkgError.NotFoundError(fmt.Sprintf("product %s not found", id))
	}
	return *found, nil
}

func (s *productService) Create(ctx context.Context, req domainProduct.CreateRequest) (domainProduct.Product, error) {
	if err := validations.ValidateCreateProduct(ctx, req); err != nil {
		return domainProduct.Product{}, err
	}

	p := domainProduct.Product{
		ProductID: uuid.New(),
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Stock:     req.Stock,
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return domainProduct.Product{}, err
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req domainProduct.UpdateRequest) (domainProduct.Product, error) {
	if err := validations.ValidateUpdateProduct(ctx, req); err != nil {
		return domainProduct.Product{}, err
	}

	changes := map[string]any{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.Stock != nil {
		changes["stock"] = *req.Stock
	}
	if req.Rating != nil {
		changes["rating"] = *req.Rating
	}

	if len(changes) > 0 {
		affected, err := s.repo.Update(ctx, id, changes)
		if err != nil {
			return domainProduct.Product{}, err
		}
		if affected == 0 {
			return domainProduct.Product{}, pkgError.NotFoundError(fmt.Sprintf("product %s not found", id))
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainProduct.Product{}, err
	}
	if updated == nil {
		return domainProduct.Product{}, pkgError.NotFoundError(fmt.Sprintf("product %s not found", id))
	}
	return *updated, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgError.NotFoundError(fmt.Sprintf("product %s not found", id))
	}
	return nil
}
