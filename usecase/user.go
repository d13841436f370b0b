// Package usecase wires the domain services: each service owns its
// repository and, when the endpoint is cacheable, the shared cache facade.
// Listing reads go through the cache; point lookups and mutations hit the
// database directly.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	domainOrder "github.com/mirtechlab/mt-analytics/domains/order"
	domainUser "github.com/mirtechlab/mt-analytics/domains/user"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/querycache"
	"github.com/mirtechlab/mt-analytics/repository"
)

type userService struct {
	repo  repository.IUserRepository
	cache *querycache.Cache
}

func NewUserService(repo repository.IUserRepository, cache *querycache.Cache) domainUser.IUserUsecase {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) List(ctx context.Context, filter domainUser.Filter) (json.RawMessage, error) {
	params := querycache.Params{
		"name":  filter.Name,
		"email": filter.Email,
		"phone": filter.Phone,
		"skip":  filter.Skip,
		"limit": filter.Limit,
	}

	payload, _, err := s.cache.GetOrCompute(ctx, "users", params, func(ctx context.Context) (any, error) {
		return s.repo.Find(ctx, filter)
	})
	return payload, err
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (domainUser.User, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainUser.User{}, err
	}
	if found == nil {
		return domainUser.User{}, pkgError.NotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return *found, nil
}

func (s *userService) Orders(ctx context.Context, id uuid.UUID) ([]domainOrder.Order, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, pkgError.NotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return s.repo.OrdersByUser(ctx, id)
}
