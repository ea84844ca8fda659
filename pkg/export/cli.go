package export

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/fleetdeck/fleetdeck/pkg/config"
	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/telematics"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Exports vehicle datasets as CSV",
		Subcommands: []*cli.Command{
			{
				Name:   "trips",
				Usage:  "export the trips for a vehicle",
				Flags:  exportFlags(),
				Action: exportTrips,
			},
			{
				Name:   "eco",
				Usage:  "export the eco events for a vehicle",
				Flags:  exportFlags(),
				Action: exportEcoEvents,
			},
		},
	}
}

func exportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "vehicle",
			Usage:    "code of the vehicle to export",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "start date (YYYY-MM-DD), defaults to 7 days ago",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "end date (YYYY-MM-DD), defaults to today",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "file to write to, stdout when omitted",
		},
		&cli.BoolFlag{
			Name:  "preview",
			Usage: "dump the fetched records instead of writing CSV",
		},
	}
}

func exportTrips(c *cli.Context) error {
	dateRange, err := parseRangeFlags(c)
	if err != nil {
		return err
	}

	from, to := dateRange.QueryWindow()

	trips, err := newTelemetryClient().GetTrips(c.String("vehicle"), from, to)
	if err != nil {
		return err
	}

	rows := BuildTripRows(trips)
	log.Info().Int("trips", len(rows)).Msg("Fetched trips")

	return writeRows(c, &rows)
}

func exportEcoEvents(c *cli.Context) error {
	dateRange, err := parseRangeFlags(c)
	if err != nil {
		return err
	}

	from, to := dateRange.QueryWindow()

	events, err := newTelemetryClient().GetEcoEvents(c.String("vehicle"), from, to)
	if err != nil {
		return err
	}

	rows := BuildEcoRows(events)
	log.Info().Int("events", len(rows)).Msg("Fetched eco events")

	return writeRows(c, &rows)
}

func newTelemetryClient() *telematics.Client {
	return telematics.NewClient(
		config.Config.Telemetry.BaseURL,
		config.Config.Telemetry.AuthToken,
		config.Config.RequestTimeout(),
	)
}

func parseRangeFlags(c *cli.Context) (fleet.DateRange, error) {
	dateRange := fleet.DefaultDateRange()

	if fromFlag := c.String("from"); fromFlag != "" {
		from, err := time.Parse("2006-01-02", fromFlag)
		if err != nil {
			return dateRange, fmt.Errorf("from should be a YYYY-MM-DD date: %w", err)
		}

		dateRange.From = from
	}

	if toFlag := c.String("to"); toFlag != "" {
		to, err := time.Parse("2006-01-02", toFlag)
		if err != nil {
			return dateRange, fmt.Errorf("to should be a YYYY-MM-DD date: %w", err)
		}

		dateRange.To = to
	}

	if dateRange.To.Before(dateRange.From) {
		return dateRange, fmt.Errorf("date range end must not be before its start")
	}

	return dateRange, nil
}

func writeRows(c *cli.Context, rows interface{}) error {
	if c.Bool("preview") {
		pretty.Println(rows)

		return nil
	}

	output := c.String("output")
	if output == "" {
		return gocsv.Marshal(rows, os.Stdout)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.Marshal(rows, file); err != nil {
		return err
	}

	log.Info().Str("file", output).Msg("Wrote export")

	return nil
}
