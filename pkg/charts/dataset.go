package charts

import (
	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

type ChartKind string

const (
	ChartKindBar      ChartKind = "bar"
	ChartKindDoughnut           = "doughnut"
)

const (
	seriesColorAverage = "#1976d2"
	seriesColorMaximum = "#ef6c00"
)

// severitySliceColors index-matches fleet.EcoSeverityScale.
var severitySliceColors = []string{"#90a4ae", "#f9a825", "#ef6c00", "#c62828"}

type Series struct {
	Name  string `groups:"basic"`
	Color string `groups:"basic"`

	// Colors carries per-slice colors for doughnut series
	Colors []string `groups:"basic"`

	Values []float64 `groups:"basic"`
}

type Dataset struct {
	Kind   ChartKind `groups:"basic"`
	Labels []string  `groups:"basic"`
	Series []Series  `groups:"basic"`
}

// SpeedDataset builds the per-trip average vs maximum speed bars, one
// label per trip keyed by its start time.
func SpeedDataset(trips []*fleet.Trip) Dataset {
	labels := []string{}
	averages := []float64{}
	maximums := []float64{}

	for _, trip := range trips {
		labels = append(labels, trip.StartedAt.Format("02/01 15:04"))
		averages = append(averages, trip.AverageSpeed)
		maximums = append(maximums, trip.MaximumSpeed)
	}

	return Dataset{
		Kind:   ChartKindBar,
		Labels: labels,
		Series: []Series{
			{Name: "Average", Color: seriesColorAverage, Values: averages},
			{Name: "Maximum", Color: seriesColorMaximum, Values: maximums},
		},
	}
}

// EcoDataset buckets events by severity into doughnut slices. The speed
// reading plays no part here, so events carrying the unavailable-speed
// sentinel still count toward their slice.
func EcoDataset(events []*fleet.EcoEvent) Dataset {
	labels := fleet.EcoSeverityScale()
	counts := make([]float64, len(labels))

	for _, event := range events {
		severity := event.Severity
		if severity < 0 || severity >= len(counts) {
			severity = 0
		}

		counts[severity]++
	}

	return Dataset{
		Kind:   ChartKindDoughnut,
		Labels: labels,
		Series: []Series{
			{Name: "Events", Colors: severitySliceColors, Values: counts},
		},
	}
}
