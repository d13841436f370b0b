package rest

import (
	"github.com/gofiber/fiber/v2"

	domainSales "github.com/mirtechlab/mt-analytics/domains/sales"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

// defaultAllLimit mirrors the historically generous /all page size; the
// fact table is the whole point of the API and dashboards pull it in bulk.
const defaultAllLimit = 1000

type Sales struct {
	Service  domainSales.ISalesUsecase
	MaxLimit int
}

func InitRestSales(app fiber.Router, service domainSales.ISalesUsecase, maxLimit int) Sales {
	rest := Sales{Service: service, MaxLimit: maxLimit}
	app.Get("/all", rest.ListAll)
	app.Get("/products/search", rest.Search)

	return rest
}

func (handler *Sales) ListAll(c *fiber.Ctx) error {
	skip, limit, err := pagination(c, defaultAllLimit, handler.MaxLimit)
	utils.PanicIfNeeded(err)

	minPrice, err := queryFloatPtr(c, "min_price")
	utils.PanicIfNeeded(err)
	maxPrice, err := queryFloatPtr(c, "max_price")
	utils.PanicIfNeeded(err)
	minQuantity, err := queryIntPtr(c, "min_quantity")
	utils.PanicIfNeeded(err)

	filter := domainSales.Filter{
		ProductCategory:   queryStrPtr(c, "product_category"),
		OrderStatus:       queryStrPtr(c, "order_status"),
		TransactionStatus: queryStrPtr(c, "transaction_status"),
		PaymentMethod:     queryStrPtr(c, "payment_method"),
		UserEmail:         queryStrPtr(c, "user_email"),
		MinPrice:          minPrice,
		MaxPrice:          maxPrice,
		MinQuantity:       minQuantity,
		Period:            queryStrPtr(c, "period"),
		FromDate:          queryStrPtr(c, "from_date"),
		Skip:              skip,
		Limit:             limit,
	}

	payload, err := handler.Service.ListAll(c.UserContext(), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Sales data",
		Results: payload,
	})
}

func (handler *Sales) Search(c *fiber.Ctx) error {
	skip, limit, err := pagination(c, defaultAllLimit, handler.MaxLimit)
	utils.PanicIfNeeded(err)

	filter := domainSales.SearchFilter{
		Query:  c.Query("query"),
		Period: queryStrPtr(c, "period"),
		Skip:   skip,
		Limit:  limit,
	}

	payload, err := handler.Service.Search(c.UserContext(), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Product search results",
		Results: payload,
	})
}
