package charts

import (
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

func TestSpeedDataset(t *testing.T) {
	trips := []*fleet.Trip{
		{
			AverageSpeed: 42.5,
			MaximumSpeed: 88,
			StartedAt:    time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			AverageSpeed: 55,
			MaximumSpeed: 97.5,
			StartedAt:    time.Date(2024, 3, 15, 17, 5, 0, 0, time.UTC),
		},
	}

	dataset := SpeedDataset(trips)

	if dataset.Kind != ChartKindBar {
		t.Errorf("expected bar dataset, got %s", dataset.Kind)
	}

	if len(dataset.Labels) != 2 || dataset.Labels[0] != "14/03 09:30" || dataset.Labels[1] != "15/03 17:05" {
		t.Errorf("unexpected labels %v", dataset.Labels)
	}

	if len(dataset.Series) != 2 {
		t.Fatalf("expected average and maximum series, got %d", len(dataset.Series))
	}

	average := dataset.Series[0]
	if average.Name != "Average" || average.Values[0] != 42.5 || average.Values[1] != 55 {
		t.Errorf("unexpected average series %+v", average)
	}

	maximum := dataset.Series[1]
	if maximum.Name != "Maximum" || maximum.Values[0] != 88 || maximum.Values[1] != 97.5 {
		t.Errorf("unexpected maximum series %+v", maximum)
	}
}

func TestSpeedDatasetEmpty(t *testing.T) {
	dataset := SpeedDataset(nil)

	if len(dataset.Labels) != 0 {
		t.Errorf("expected no labels, got %v", dataset.Labels)
	}
	for _, series := range dataset.Series {
		if len(series.Values) != 0 {
			t.Errorf("series %s should be empty, got %v", series.Name, series.Values)
		}
	}
}

func TestEcoDatasetCountsBySeverity(t *testing.T) {
	events := []*fleet.EcoEvent{
		{Severity: 3, Speed: 105},
		{Severity: 3, Speed: fleet.EcoEventSpeedUnavailable},
		{Severity: 1, Speed: 62},
		{Severity: 0, Speed: 30},
		{Severity: 7, Speed: 48}, // out-of-range folds into the unknown bucket
	}

	dataset := EcoDataset(events)

	if dataset.Kind != ChartKindDoughnut {
		t.Errorf("expected doughnut dataset, got %s", dataset.Kind)
	}

	expectedLabels := []string{"Info", "Minor", "Moderate", "Severe"}
	for i, label := range expectedLabels {
		if dataset.Labels[i] != label {
			t.Errorf("label %d: expected %s, got %s", i, label, dataset.Labels[i])
		}
	}

	if len(dataset.Series) != 1 {
		t.Fatalf("expected a single slice series, got %d", len(dataset.Series))
	}

	values := dataset.Series[0].Values
	expected := []float64{2, 1, 0, 2}
	for i, count := range expected {
		if values[i] != count {
			t.Errorf("severity %d: expected count %.0f, got %.0f", i, count, values[i])
		}
	}
}

func TestEcoDatasetSentinelSpeedNeverPlotted(t *testing.T) {
	events := []*fleet.EcoEvent{
		{Severity: 2, Speed: fleet.EcoEventSpeedUnavailable},
		{Severity: 2, Speed: fleet.EcoEventSpeedUnavailable},
	}

	dataset := EcoDataset(events)

	// Sentinel-speed events still count toward their slice
	if dataset.Series[0].Values[2] != 2 {
		t.Errorf("expected both events counted, got %.0f", dataset.Series[0].Values[2])
	}

	// but the sentinel value itself must never surface as a plotted number
	for _, series := range dataset.Series {
		for _, value := range series.Values {
			if value == float64(fleet.EcoEventSpeedUnavailable) {
				t.Error("sentinel speed leaked into a numeric series")
			}
		}
	}
}
