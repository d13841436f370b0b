package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	domainTransaction "github.com/mirtechlab/mt-analytics/domains/transaction"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/querycache"
	"github.com/mirtechlab/mt-analytics/repository"
)

type transactionService struct {
	repo  repository.ITransactionRepository
	cache *querycache.Cache
}

func NewTransactionService(repo repository.ITransactionRepository, cache *querycache.Cache) domainTransaction.ITransactionUsecase {
	return &transactionService{repo: repo, cache: cache}
}

func (s *transactionService) List(ctx context.Context, filter domainTransaction.Filter) (json.RawMessage, error) {
	params := querycache.Params{
		"status":         filter.Status,
		"payment_method": filter.PaymentMethod,
		"order_id":       filter.OrderID,
		"min_amount":     filter.MinAmount,
		"max_amount":     filter.MaxAmount,
		"skip":           filter.Skip,
		"limit":          filter.Limit,
	}

	payload, _, err := s.cache.GetOrCompute(ctx, "transactions", params, func(ctx context.Context) (any, error) {
		return s.repo.Find(ctx, filter)
	})
	return payload, err
}

func (s *transactionService) GetByID(ctx context.Context, id uuid.UUID) (domainTransaction.Transaction, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainTransaction.Transaction{}, err
	}
	if found == nil {
		return domainTransaction.Transaction{}, pkgError.NotFoundError(fmt.Sprintf("transaction %s not found", id))
	}
	return *found, nil
}
