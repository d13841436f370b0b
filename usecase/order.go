package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	domainOrder "github.com/mirtechlab/mt-analytics/domains/order"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/querycache"
	"github.com/mirtechlab/mt-analytics/repository"
)

type orderService struct {
	repo  repository.IOrderRepository
	cache *querycache.Cache
}

func NewOrderService(repo repository.IOrderRepository, cache *querycache.Cache) domainOrder.IOrderUsecase {
	return &orderService{repo: repo, cache: cache}
}

func (s *orderService) List(ctx context.Context, filter domainOrder.Filter) (json.RawMessage, error) {
	params := querycache.Params{
		"status":     filter.Status,
		"user_id":    filter.UserID,
		"min_amount": filter.MinAmount,
		"max_amount": filter.MaxAmount,
		"skip":       filter.Skip,
		"limit":      filter.Limit,
	}

	payload, _, err := s.cache.GetOrCompute(ctx, "orders", params, func(ctx context.Context) (any, error) {
		return s.repo.Find(ctx, filter)
	})
	return payload, err
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (domainOrder.Order, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainOrder.Order{}, err
	}
	if found == nil {
		return domainOrder.Order{}, pkgError.NotFoundError(fmt.Sprintf("order %s not found", id))
	}
	return *found, nil
}

func (s *orderService) Items(ctx context.Context, id uuid.UUID) ([]domainOrder.Item, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, pkgError.NotFoundError(fmt.Sprintf("order %s not found", id))
	}
	return s.repo.Items(ctx, id)
}
