package rest

import (
	"github.com/gofiber/fiber/v2"

	domainCache "github.com/mirtechlab/mt-analytics/domains/cache"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

type Cache struct {
	Service domainCache.ICacheUsecase
}

func InitRestCache(app fiber.Router, service domainCache.ICacheUsecase) Cache {
	rest := Cache{Service: service}
	app.Get("/cache/stats", rest.Stats)

	return rest
}

func (handler *Cache) Stats(c *fiber.Ctx) error {
	stats, err := handler.Service.Stats(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache stats",
		Results: stats,
	})
}
