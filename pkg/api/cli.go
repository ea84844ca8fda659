package api

import (
	"time"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/fleetdeck/fleetdeck/pkg/charts"
	"github.com/fleetdeck/fleetdeck/pkg/config"
	"github.com/fleetdeck/fleetdeck/pkg/coordinator"
	"github.com/fleetdeck/fleetdeck/pkg/enrichment"
	"github.com/fleetdeck/fleetdeck/pkg/maprender"
	"github.com/fleetdeck/fleetdeck/pkg/orchestrator"
	"github.com/fleetdeck/fleetdeck/pkg/telematics"
)

func buildDashboard(refreshInterval time.Duration) *orchestrator.Orchestrator {
	telemetry := telematics.NewClient(
		config.Config.Telemetry.BaseURL,
		config.Config.Telemetry.AuthToken,
		config.Config.RequestTimeout(),
	)
	weather := enrichment.NewWeatherClient(config.Config.Weather.BaseURL, config.Config.RequestTimeout())
	geocode := enrichment.NewGeocodeClient(
		config.Config.Geocoding.BaseURL,
		config.Config.Geocoding.Locale,
		config.Config.RequestTimeout(),
	)

	selection := coordinator.NewSelectionState()

	return orchestrator.New(
		selection,
		coordinator.NewFleetCoordinator(telemetry),
		coordinator.NewDetailCoordinator(telemetry, selection),
		coordinator.NewEnrichmentCoordinator(weather, geocode, selection),
		maprender.NewEngine(),
		charts.NewRenderer(),
		refreshInterval,
	)
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Provides the fleet dashboard web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the dashboard server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					listen := c.String("listen")
					if listen == "" {
						listen = config.Config.Dashboard.Listen
					}

					dashboard := buildDashboard(config.Config.Dashboard.RefreshInterval())

					if err := dashboard.Start(); err != nil {
						return err
					}
					defer dashboard.Stop()

					return SetupServer(listen, dashboard)
				},
			},
			{
				Name:  "inspect",
				Usage: "bootstrap the dashboard once and dump its state",
				Action: func(c *cli.Context) error {
					dashboard := buildDashboard(0)

					if err := dashboard.Start(); err != nil {
						return err
					}
					defer dashboard.Stop()

					pretty.Println(dashboard.State())
					pretty.Println(dashboard.MapSnapshot())

					return nil
				},
			},
		},
	}
}
