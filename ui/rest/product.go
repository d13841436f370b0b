package rest

import (
	"github.com/gofiber/fiber/v2"

	domainProduct "github.com/mirtechlab/mt-analytics/domains/product"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

type Product struct {
	Service      domainProduct.IProductUsecase
	DefaultLimit int
	MaxLimit     int
}

func InitRestProduct(app fiber.Router, service domainProduct.IProductUsecase, defaultLimit, maxLimit int) Product {
	rest := Product{Service: service, DefaultLimit: defaultLimit, MaxLimit: maxLimit}
	app.Get("/products", rest.List)
	app.Get("/stats/product/:id", rest.Stats)
	app.Post("/product/new", rest.Create)
	app.Put("/product/:id", rest.Update)
	app.Delete("/product/:id", rest.Delete)

	return rest
}

func (handler *Product) List(c *fiber.Ctx) error {
	skip, limit, err := pagination(c, handler.DefaultLimit, handler.MaxLimit)
	utils.PanicIfNeeded(err)

	minPrice, err := queryFloatPtr(c, "min_price")
	utils.PanicIfNeeded(err)
	maxPrice, err := queryFloatPtr(c, "max_price")
	utils.PanicIfNeeded(err)
	minRating, err := queryFloatPtr(c, "min_rating")
	utils.PanicIfNeeded(err)
	inStock, err := queryBoolPtr(c, "in_stock")
	utils.PanicIfNeeded(err)

	filter := domainProduct.Filter{
		Category:  queryStrPtr(c, "category"),
		Name:      queryStrPtr(c, "name"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		MinRating: minRating,
		InStock:   inStock,
		Skip:      skip,
		Limit:     limit,
	}

	payload, err := handler.Service.List(c.UserContext(), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Products",
		Results: payload,
	})
}

func (handler *Product) Stats(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	stats, err := handler.Service.Stats(c.UserContext(), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Product stats",
		Results: stats,
	})
}

func (handler *Product) Create(c *fiber.Ctx) error {
	var request domainProduct.CreateRequest
	if err := c.BodyParser(&request); err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("invalid JSON body"))
	}

	created, err := handler.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Product created",
		Results: created,
	})
}

func (handler *Product) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	var request domainProduct.UpdateRequest
	if err := c.BodyParser(&request); err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("invalid JSON body"))
	}

	updated, err := handler.Service.Update(c.UserContext(), id, request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Product updated",
		Results: updated,
	})
}

func (handler *Product) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	err = handler.Service.Delete(c.UserContext(), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Product deleted successfully",
		Results: map[string]any{
			"product_id": id,
		},
	})
}
