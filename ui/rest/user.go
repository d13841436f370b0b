package rest

import (
	"github.com/gofiber/fiber/v2"

	domainUser "github.com/mirtechlab/mt-analytics/domains/user"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

type User struct {
	Service      domainUser.IUserUsecase
	DefaultLimit int
	MaxLimit     int
}

func InitRestUser(app fiber.Router, service domainUser.IUserUsecase, defaultLimit, maxLimit int) User {
	rest := User{Service: service, DefaultLimit: defaultLimit, MaxLimit: maxLimit}
	app.Get("/users", rest.List)
	app.Get("/user/:id", rest.GetByID)
	app.Get("/user/:id/orders", rest.Orders)

	return rest
}

func (handler *User) List(c *fiber.Ctx) error {
	skip, limit, err := pagination(c, handler.DefaultLimit, handler.MaxLimit)
	utils.PanicIfNeeded(err)

	filter := domainUser.Filter{
		Name:  queryStrPtr(c, "name"),
		Email: queryStrPtr(c, "email"),
		Phone: queryStrPtr(c, "phone"),
		Skip:  skip,
		Limit: limit,
	}

	payload, err := handler.Service.List(c.UserContext(), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Users",
		Results: payload,
	})
}

func (handler *User) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	found, err := handler.Service.GetByID(c.UserContext(), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "User",
		Results: found,
	})
}

func (handler *User) Orders(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	utils.PanicIfNeeded(err)

	orders, err := handler.Service.Orders(c.UserContext(), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "User orders",
		Results: orders,
	})
}
