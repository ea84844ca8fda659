package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FleetRefreshTotal counts fleet list refreshes by outcome
	FleetRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdeck_fleet_refresh_total",
			Help: "Total number of fleet list refreshes.",
		},
		[]string{"status"},
	)

	// FleetVehicles tracks the size of the current vehicle collection
	FleetVehicles = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fleetdeck_fleet_vehicles",
			Help: "Number of vehicles in the active group.",
		},
	)

	// DetailFetchTotal counts per-vehicle detail fetches by dataset and outcome
	DetailFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdeck_detail_fetch_total",
			Help: "Total number of trip/eco/history fetches.",
		},
		[]string{"dataset", "status"},
	)

	// StaleResultsDiscarded counts async results dropped because the
	// selection moved on before they resolved
	StaleResultsDiscarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdeck_stale_results_discarded_total",
			Help: "Async results discarded after a newer selection superseded them.",
		},
		[]string{"dataset"},
	)

	// EnrichmentFailures counts swallowed weather/address failures
	EnrichmentFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdeck_enrichment_failures_total",
			Help: "Weather and geocoding failures (logged, never surfaced).",
		},
		[]string{"provider"},
	)

	// SelectionChanges counts vehicle selection changes
	SelectionChanges = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetdeck_selection_changes_total",
			Help: "Total number of vehicle selection changes.",
		},
	)

	// ProviderRequestDuration observes telemetry provider round trips
	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleetdeck_provider_request_duration_seconds",
			Help:    "Latency of telemetry provider requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(FleetRefreshTotal)
	prometheus.MustRegister(FleetVehicles)
	prometheus.MustRegister(DetailFetchTotal)
	prometheus.MustRegister(StaleResultsDiscarded)
	prometheus.MustRegister(EnrichmentFailures)
	prometheus.MustRegister(SelectionChanges)
	prometheus.MustRegister(ProviderRequestDuration)
}
