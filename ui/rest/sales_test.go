package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	domainSales "github.com/mirtechlab/mt-analytics/domains/sales"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/ui/rest/middleware"
)

type fakeSalesService struct {
	lastFilter domainSales.Filter
	lastSearch domainSales.SearchFilter
}

func (f *fakeSalesService) ListAll(_ context.Context, filter domainSales.Filter) (json.RawMessage, error) {
	f.lastFilter = filter
	return json.RawMessage(`[]`), nil
}

func (f *fakeSalesService) Search(_ context.Context, filter domainSales.SearchFilter) (json.RawMessage, error) {
	f.lastSearch = filter
	if filter.Query == "" {
		return nil, pkgError.ValidationError("query: cannot be blank.")
	}
	return json.RawMessage(`[]`), nil
}

func newSalesApp() (*fiber.App, *fakeSalesService) {
	app := fiber.New()
	app.Use(middleware.Recovery())
	service := &fakeSalesService{}
	InitRestSales(app, service, 10000)
	return app, service
}

func TestListAllDefaults(t *testing.T) {
	app, service := newSalesApp()

	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	got := service.lastFilter
	if got.Skip != 0 || got.Limit != 1000 {
		t.Errorf("pagination = %d/%d, want 0/1000", got.Skip, got.Limit)
	}
	if got.Period != nil {
		t.Errorf("period = %v, want nil", got.Period)
	}
}

func TestListAllPassesWindowAndFilters(t *testing.T) {
	app, service := newSalesApp()

	req := httptest.NewRequest(http.MethodGet,
		"/all?period=6months&product_category=Electronics&min_price=10&min_quantity=2", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	got := service.lastFilter
	if got.Period == nil || *got.Period != "6months" {
		t.Errorf("period = %v, want 6months", got.Period)
	}
	if got.ProductCategory == nil || *got.ProductCategory != "Electronics" {
		t.Errorf("product_category = %v, want Electronics", got.ProductCategory)
	}
	if got.MinPrice == nil || *got.MinPrice != 10 {
		t.Errorf("min_price = %v, want 10", got.MinPrice)
	}
	if got.MinQuantity == nil || *got.MinQuantity != 2 {
		t.Errorf("min_quantity = %v, want 2", got.MinQuantity)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	app, _ := newSalesApp()

	req := httptest.NewRequest(http.MethodGet, "/products/search", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSearchPassesQuery(t *testing.T) {
	app, service := newSalesApp()

	req := httptest.NewRequest(http.MethodGet, "/products/search?query=lap&period=month", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	got := service.lastSearch
	if got.Query != "lap" {
		t.Errorf("query = %q, want lap", got.Query)
	}
	if got.Period == nil || *got.Period != "month" {
		t.Errorf("period = %v, want month", got.Period)
	}
}
