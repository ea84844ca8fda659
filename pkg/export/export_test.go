package export

import (
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

func TestBuildTripRows(t *testing.T) {
	trips := []*fleet.Trip{
		{
			VehicleCode:    "V1",
			StartAddress:   "Depot Road, Croydon",
			EndAddress:     "High Street, Watford",
			DistanceMetres: 12500,
			AverageSpeed:   42.5,
			MaximumSpeed:   88,
			DurationLabel:  "1h 05m",
			StartedAt:      time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC),
		},
	}

	rows := BuildTripRows(trips)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.DistanceKilometres != 12.5 {
		t.Errorf("expected 12.5 km, got %f", row.DistanceKilometres)
	}
	if row.StartedAt != "2024-03-14T09:30:00Z" {
		t.Errorf("unexpected timestamp %s", row.StartedAt)
	}
	if row.Duration != "1h 05m" {
		t.Errorf("unexpected duration %s", row.Duration)
	}
}

func TestBuildEcoRowsSentinelSpeed(t *testing.T) {
	events := []*fleet.EcoEvent{
		{
			VehicleCode: "V1",
			EventType:   2,
			Severity:    3,
			Speed:       74,
			RecordedAt:  time.Date(2024, 3, 14, 11, 0, 0, 0, time.UTC),
		},
		{
			VehicleCode: "V1",
			EventType:   4,
			Severity:    1,
			Speed:       fleet.EcoEventSpeedUnavailable,
			RecordedAt:  time.Date(2024, 3, 14, 11, 5, 0, 0, time.UTC),
		},
	}

	rows := BuildEcoRows(events)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].EventType != "Harsh Braking" || rows[0].Severity != "Severe" || rows[0].Speed != "74" {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	if rows[1].EventType != "Overspeeding" || rows[1].Speed != "N/A" {
		t.Errorf("the sentinel speed must export as N/A, got %+v", rows[1])
	}
}

func TestEcoRowsMarshalWithSentinel(t *testing.T) {
	rows := BuildEcoRows([]*fleet.EcoEvent{
		{VehicleCode: "V1", EventType: 1, Severity: 0, Speed: fleet.EcoEventSpeedUnavailable, RecordedAt: time.Date(2024, 3, 14, 11, 0, 0, 0, time.UTC)},
	})

	var output strings.Builder
	if err := gocsv.Marshal(&rows, &output); err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	csv := output.String()
	if !strings.HasPrefix(csv, "vehicle_code,recorded_at,event_type,severity,speed") {
		t.Errorf("unexpected header in %q", csv)
	}
	if !strings.Contains(csv, "N/A") {
		t.Errorf("sentinel speed should serialize as N/A, got %q", csv)
	}
}
