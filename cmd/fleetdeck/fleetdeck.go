package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/fleetdeck/fleetdeck/pkg/api"
	"github.com/fleetdeck/fleetdeck/pkg/config"
	"github.com/fleetdeck/fleetdeck/pkg/export"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("FLEETDECK_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("FLEETDECK_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	app := &cli.App{
		Name:        "fleetdeck",
		Description: "Single binary of truth for FleetDeck - runs the dashboard and tooling",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			export.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
