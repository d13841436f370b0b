package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	domainProduct "github.com/mirtechlab/mt-analytics/domains/product"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/ui/rest/middleware"
)

type fakeProductService struct {
	lastFilter domainProduct.Filter
}

func (f *fakeProductService) List(_ context.Context, filter domainProduct.Filter) (json.RawMessage, error) {
	f.lastFilter = filter
	return json.RawMessage(`[]`), nil
}

func (f *fakeProductService) Stats(_ context.Context, id uuid.UUID) (domainProduct.Stats, error) {
	return domainProduct.Stats{}, pkgError.NotFoundError(fmt.Sprintf("product %s not found", id))
}

func (f *fakeProductService) Create(_ context.Context, req domainProduct.CreateRequest) (domainProduct.Product, error) {
	if req.Name == "" {
		return domainProduct.Product{}, pkgError.ValidationError("name: cannot be blank.")
	}
	return domainProduct.Product{ProductID: uuid.New(), Name: req.Name, Category: req.Category, Price: req.Price}, nil
}

func (f *fakeProductService) Update(_ context.Context, id uuid.UUID, _ domainProduct.UpdateRequest) (domainProduct.Product, error) {
	return domainProduct.Product{ProductID: id}, nil
}

func (f *fakeProductService) Delete(context.Context, uuid.UUID) error {
	return nil
}

func newProductApp() (*fiber.App, *fakeProductService) {
	app := fiber.New()
	app.Use(middleware.Recovery())
	service := &fakeProductService{}
	InitRestProduct(app, service, 100, 10000)
	return app, service
}

type envelope struct {
	Status  int             `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Results json.RawMessage `json:"results"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestListProductsParsesFilters(t *testing.T) {
	app, service := newProductApp()

	req := httptest.NewRequest(http.MethodGet, "/products?category=Tools&min_price=5.5&in_stock=true&skip=10&limit=20", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	got := service.lastFilter
	if got.Category == nil || *got.Category != "Tools" {
		t.Errorf("category = %v, want Tools", got.Category)
	}
	if got.MinPrice == nil || *got.MinPrice != 5.5 {
		t.Errorf("min_price = %v, want 5.5", got.MinPrice)
	}
	if got.InStock == nil || !*got.InStock {
		t.Errorf("in_stock = %v, want true", got.InStock)
	}
	if got.Name != nil {
		t.Errorf("name = %v, want nil for an absent param", got.Name)
	}
	if got.Skip != 10 || got.Limit != 20 {
		t.Errorf("pagination = %d/%d, want 10/20", got.Skip, got.Limit)
	}
}

func TestListProductsClampsLimit(t *testing.T) {
	app, service := newProductApp()

	req := httptest.NewRequest(http.MethodGet, "/products?limit=999999", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if service.lastFilter.Limit != 10000 {
		t.Errorf("limit = %d, want clamped to 10000", service.lastFilter.Limit)
	}
}

func TestListProductsRejectsMalformedPrice(t *testing.T) {
	app, _ := newProductApp()

	req := httptest.NewRequest(http.MethodGet, "/products?min_price=cheap", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	env := decodeEnvelope(t, resp)
	if resp.StatusCode != http.StatusBadRequest || env.Code != "VALIDATION_ERROR" {
		t.Fatalf("got %d/%s, want 400/VALIDATION_ERROR", resp.StatusCode, env.Code)
	}
}

func TestProductStatsUnknownIDIs404(t *testing.T) {
	app, _ := newProductApp()

	req := httptest.NewRequest(http.MethodGet, "/stats/product/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	env := decodeEnvelope(t, resp)
	if resp.StatusCode != http.StatusNotFound || env.Code != "NOT_FOUND_ERROR" {
		t.Fatalf("got %d/%s, want 404/NOT_FOUND_ERROR", resp.StatusCode, env.Code)
	}
}

func TestProductStatsMalformedIDIs400(t *testing.T) {
	app, _ := newProductApp()

	req := httptest.NewRequest(http.MethodGet, "/stats/product/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	env := decodeEnvelope(t, resp)
	if resp.StatusCode != http.StatusBadRequest || env.Code != "VALIDATION_ERROR" {
		t.Fatalf("got %d/%s, want 400/VALIDATION_ERROR", resp.StatusCode, env.Code)
	}
}

func TestCreateProduct(t *testing.T) {
	app, _ := newProductApp()

	body := []byte(`{"name":"Widget","category":"Tools","price":4.99}`)
	req := httptest.NewRequest(http.MethodPost, "/product/new", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	env := decodeEnvelope(t, resp)
	if resp.StatusCode != http.StatusCreated || env.Code != "SUCCESS" {
		t.Fatalf("got %d/%s, want 201/SUCCESS", resp.StatusCode, env.Code)
	}

	var created domainProduct.Product
	if err := json.Unmarshal(env.Results, &created); err != nil {
		t.Fatalf("unmarshal results: %v", err)
	}
	if created.Name != "Widget" {
		t.Errorf("name = %q, want Widget", created.Name)
	}
}

func TestCreateProductValidationErrorSurfaces(t *testing.T) {
	app, _ := newProductApp()

	body := []byte(`{"price":4.99}`)
	req := httptest.NewRequest(http.MethodPost, "/product/new", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	env := decodeEnvelope(t, resp)
	if resp.StatusCode != http.StatusBadRequest || env.Code != "VALIDATION_ERROR" {
		t.Fatalf("got %d/%s, want 400/VALIDATION_ERROR", resp.StatusCode, env.Code)
	}
}
