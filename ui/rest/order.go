package rest

import (
	"github.com/gofiber/fiber/v2"

	domainOrder "github.com/mirtechlab/mt-analytics/domains/order"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

type Order struct {
	Service      domainOrder.IOrderUsecase
	DefaultLimit int
	MaxLimit     int
}

func InitRestOrder(app fiber.Router, service domainOrder.IOrderUsecase, defaultLimit, maxLimit int) Order {
	rest := Order{Service: service, DefaultLimit: defaultLimit, MaxLimit: maxLimit}
	app.Get("/orders", rest.List)
	app.Get("/order/:id", rest.GetByID)
	app.Get("/order/:id/items", rest.Items)

	return rest
}

func (handler *Order) List(c *fiber.Ctx) error {
	skip, limit, err := pagination(c, handler.DefaultLimit, handler.MaxLimit)
	utils.PanicIfNeeded(err)

	userID, err := queryUUIDPtr(c, "user_id")
	utils.PanicIfNeeded(err)
	minAmount, err := queryFloatPtr(c, "min_amount")
	utils.PanicIfNeeded(err)
	maxAmount, err := queryFloatPtr(c, "max_amount")
	utils.PanicIfNeeded(err)

	filter := domainOrder.Filter{
		Status:    queryStrPtr(c, "status"),
		UserID:    userID,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		Skip:      skip,
		Limit:     limit,
	}

	payload, err := handler.Service.List(c.UserContext(), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Orders",
		Results: payload,
	})
}

func (handler *Order) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	found, err := handler.Service.GetByID(c.UserContext(), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Order",
		Results: found,
	})
}

func (handler *Order) Items(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	items, err := handler.Service.Items(c.UserContext(), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Order items",
		Results: items,
	})
}
