package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

// Recovery turns handler panics into the JSON error envelope. Handlers
// raise typed errors through utils.PanicIfNeeded; anything else maps to a
// plain 500.
func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			err := recover()
			if err != nil {
				var res utils.ResponseData
				res.Status = 500
				res.Code = "INTERNAL_SERVER_ERROR"
				res.Message = fmt.Sprintf("%v", err)

				logrus.Errorf("Panic recovered in middleware: %v", err)

				typed, isTyped := err.(pkgError.GenericError)
				if isTyped {
					res.Status = typed.StatusCode()
					res.Code = typed.ErrCode()
					res.Message = typed.Error()
				}

				_ = ctx.Status(res.Status).JSON(res)
			}
		}()

		return ctx.Next()
	}
}
