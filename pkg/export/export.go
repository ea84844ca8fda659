package export

import (
	"time"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

type TripRow struct {
	VehicleCode string `csv:"vehicle_code"`
	StartedAt   string `csv:"started_at"`

	StartAddress string `csv:"start_address"`
	EndAddress   string `csv:"end_address"`

	DistanceKilometres float64 `csv:"distance_km"`
	AverageSpeed       float64 `csv:"average_speed"`
	MaximumSpeed       float64 `csv:"maximum_speed"`

	Duration string `csv:"duration"`
}

type EcoRow struct {
	VehicleCode string `csv:"vehicle_code"`
	RecordedAt  string `csv:"recorded_at"`

	EventType string `csv:"event_type"`
	Severity  string `csv:"severity"`

	// Speed is a string so the unavailable sentinel can export as N/A
	Speed string `csv:"speed"`
}

func BuildTripRows(trips []*fleet.Trip) []*TripRow {
	rows := []*TripRow{}

	for _, trip := range trips {
		rows = append(rows, &TripRow{
			VehicleCode: trip.VehicleCode,
			StartedAt:   trip.StartedAt.Format(time.RFC3339),

			StartAddress: trip.StartAddress,
			EndAddress:   trip.EndAddress,

			DistanceKilometres: trip.DistanceKilometres(),
			AverageSpeed:       trip.AverageSpeed,
			MaximumSpeed:       trip.MaximumSpeed,

			Duration: trip.DurationLabel,
		})
	}

	return rows
}

func BuildEcoRows(events []*fleet.EcoEvent) []*EcoRow {
	rows := []*EcoRow{}

	for _, event := range events {
		rows = append(rows, &EcoRow{
			VehicleCode: event.VehicleCode,
			RecordedAt:  event.RecordedAt.Format(time.RFC3339),

			EventType: event.TypeLabel(),
			Severity:  event.SeverityLabel(),

			Speed: event.SpeedLabel(),
		})
	}

	return rows
}
