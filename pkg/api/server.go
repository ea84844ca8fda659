package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleetdeck/fleetdeck/pkg/api/routes"
	"github.com/fleetdeck/fleetdeck/pkg/orchestrator"
)

func SetupServer(listen string, dashboard *orchestrator.Orchestrator) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	routes.UseDashboard(dashboard)

	webApp.Get("version", routes.APIVersion)
	webApp.Get("health", routes.Health)
	webApp.Get("metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.DashboardRouter(webApp.Group("/dashboard"))

	return webApp.Listen(listen)
}
