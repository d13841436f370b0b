package rest

import (
	"github.com/gofiber/fiber/v2"

	domainApp "github.com/mirtechlab/mt-analytics/domains/app"
	domainHealth "github.com/mirtechlab/mt-analytics/domains/health"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
)

type App struct {
	Service domainApp.IAppUsecase
	Health  domainHealth.IHealthUsecase
}

func InitRestApp(app fiber.Router, service domainApp.IAppUsecase, health domainHealth.IHealthUsecase) App {
	rest := App{Service: service, Health: health}
	app.Get("/", rest.Root)
	app.Get("/config", rest.RuntimeConfig)
	app.Get("/health", rest.HealthCheck)

	return rest
}

func (handler *App) Root(c *fiber.Ctx) error {
	info := handler.Service.Info(c.UserContext())

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: info.Title,
		Results: info,
	})
}

func (handler *App) RuntimeConfig(c *fiber.Ctx) error {
	cfg := handler.Service.RuntimeConfig(c.UserContext())

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Runtime configuration",
		Results: cfg,
	})
}

// HealthCheck reports component status. The HTTP status stays 200 even when
// degraded so load balancers keep routing while the cache is down; a dead
// database returns 503.
func (handler *App) HealthCheck(c *fiber.Ctx) error {
	report := handler.Health.Check(c.UserContext())

	status := 200
	if report.Status == domainHealth.StatusError {
		status = 503
	}

	return c.Status(status).JSON(utils.ResponseData{
		Status:  status,
		Code:    string(report.Status),
		Message: "Health check",
		Results: report,
	})
}
