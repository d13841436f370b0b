package rest

import (
	"github.com/gofiber/fiber/v2"

	domainStats "github.com/mirtechlab/mt-analytics/domains/stats"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

type Stats struct {
	Service domainStats.IStatsUsecase
}

func InitRestStats(app fiber.Router, service domainStats.IStatsUsecase) Stats {
	rest := Stats{Service: service}
	app.Get("/stats", rest.Overview)
	app.Get("/stats/charts", rest.Charts)
	app.Get("/stats/summary", rest.Summary)

	return rest
}

func (handler *Stats) Overview(c *fiber.Ctx) error {
	overview, err := handler.Service.Overview(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Stats overview",
		Results: overview,
	})
}

func (handler *Stats) Charts(c *fiber.Ctx) error {
	payload, err := handler.Service.Charts(c.UserContext(), c.Query("period"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chart stats",
		Results: payload,
	})
}

func (handler *Stats) Summary(c *fiber.Ctx) error {
	payload, err := handler.Service.Summary(c.UserContext(), c.Query("period"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Summary stats",
		Results: payload,
	})
}
