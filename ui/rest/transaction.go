package rest

import (
	"github.com/gofiber/fiber/v2"

	domainTransaction "github.com/mirtechlab/mt-analytics/domains/transaction"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

type Transaction struct {
	Service      domainTransaction.ITransactionUsecase
	DefaultLimit int
	MaxLimit     int
}

func InitRestTransaction(app fiber.Router, service domainTransaction.ITransactionUsecase, defaultLimit, maxLimit int) Transaction {
	rest := Transaction{Service: service, DefaultLimit: defaultLimit, MaxLimit: maxLimit}
	app.Get("/transactions", rest.List)
	app.Get("/transaction/:id", rest.GetByID)

	return rest
}

func (handler *Transaction) List(c *fiber.Ctx) error {
	skip, limit, err := pagination(c, handler.DefaultLimit, handler.MaxLimit)
	utils.PanicIfNeeded(err)

	orderID, err := queryUUIDPtr(c, "order_id")
	utils.PanicIfNeeded(err)
	minAmount, err := queryFloatPtr(c, "min_amount")
	utils.PanicIfNeeded(err)
	maxAmount, err := queryFloatPtr(c, "max_amount")
	utils.PanicIfNeeded(err)

	filter := domainTransaction.Filter{
		Status:        queryStrPtr(c, "status"),
		PaymentMethod: queryStrPtr(c, "payment_method"),
		OrderID:       orderID,
		MinAmount:     minAmount,
		MaxAmount:     maxAmount,
		Skip:          skip,
		Limit:         limit,
	}

	payload, err := handler.Service.List(c.UserContext(), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Transactions",
		Results: payload,
	})
}

func (handler *Transaction) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	found, err := handler.Service.GetByID(c.UserContext(), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Transaction",
		Results: found,
	})
}
