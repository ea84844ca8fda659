package coordinator

import (
	"sync"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/metrics"
)

// DetailCoordinator owns per-vehicle trip and eco-event state plus the
// active date range. Fetches are stamped with the selection generation
// current at dispatch time; a completion for a superseded generation
// writes nothing, so a slow response for one vehicle can never land in
// another vehicle's view.
type DetailCoordinator struct {
	provider  TelemetryProvider
	selection *SelectionState

	mutex sync.RWMutex

	dateRange fleet.DateRange

	trips     []*fleet.Trip
	ecoEvents []*fleet.EcoEvent

	loadingTrips bool
	loadingEco   bool
}

type DetailSnapshot struct {
	DateRange fleet.DateRange `groups:"basic"`

	Trips     []*fleet.Trip     `groups:"basic"`
	EcoEvents []*fleet.EcoEvent `groups:"basic"`

	LoadingTrips bool `groups:"basic"`
	LoadingEco   bool `groups:"basic"`
}

func NewDetailCoordinator(provider TelemetryProvider, selection *SelectionState) *DetailCoordinator {
	return &DetailCoordinator{
		provider:  provider,
		selection: selection,

		dateRange: fleet.DefaultDateRange(),

		trips:     []*fleet.Trip{},
		ecoEvents: []*fleet.EcoEvent{},
	}
}

// Clear wipes all per-vehicle state. Runs synchronously during a
// selection change, before any fetch for the new vehicle is issued.
func (coordinator *DetailCoordinator) Clear() {
	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()

	coordinator.trips = []*fleet.Trip{}
	coordinator.ecoEvents = []*fleet.EcoEvent{}
	coordinator.loadingTrips = false
	coordinator.loadingEco = false
}

func (coordinator *DetailCoordinator) FetchTrips(vehicleCode string, generation uint64) error {
	coordinator.mutex.Lock()
	if !coordinator.selection.Matches(generation) {
		coordinator.mutex.Unlock()
		metrics.StaleResultsDiscarded.WithLabelValues("trips").Inc()
		return nil
	}
	coordinator.trips = []*fleet.Trip{}
	coordinator.loadingTrips = true
	windowStart, windowEnd := coordinator.dateRange.QueryWindow()
	coordinator.mutex.Unlock()

	trips, err := coordinator.provider.GetTrips(vehicleCode, windowStart, windowEnd)

	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()

	if !coordinator.selection.Matches(generation) {
		metrics.StaleResultsDiscarded.WithLabelValues("trips").Inc()
		log.Debug().Str("vehicle", vehicleCode).Msg("Discarding stale trips response")
		return nil
	}

	coordinator.loadingTrips = false

	if err != nil {
		metrics.DetailFetchTotal.WithLabelValues("trips", "failed").Inc()
		log.Error().Err(err).Str("vehicle", vehicleCode).Msg("Failed to fetch trips")
		return err
	}

	if trips == nil {
		trips = []*fleet.Trip{}
	}

	coordinator.trips = trips
	metrics.DetailFetchTotal.WithLabelValues("trips", "success").Inc()

	return nil
}

func (coordinator *DetailCoordinator) FetchEco(vehicleCode string, generation uint64) error {
	coordinator.mutex.Lock()
	if !coordinator.selection.Matches(generation) {
		coordinator.mutex.Unlock()
		metrics.StaleResultsDiscarded.WithLabelValues("eco").Inc()
		return nil
	}
	coordinator.ecoEvents = []*fleet.EcoEvent{}
	coordinator.loadingEco = true
	windowStart, windowEnd := coordinator.dateRange.QueryWindow()
	coordinator.mutex.Unlock()

	ecoEvents, err := coordinator.provider.GetEcoEvents(vehicleCode, windowStart, windowEnd)

	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()

	if !coordinator.selection.Matches(generation) {
		metrics.StaleResultsDiscarded.WithLabelValues("eco").Inc()
		log.Debug().Str("vehicle", vehicleCode).Msg("Discarding stale eco events response")
		return nil
	}

	coordinator.loadingEco = false

	if err != nil {
		metrics.DetailFetchTotal.WithLabelValues("eco", "failed").Inc()
		log.Error().Err(err).Str("vehicle", vehicleCode).Msg("Failed to fetch eco events")
		return err
	}

	if ecoEvents == nil {
		ecoEvents = []*fleet.EcoEvent{}
	}

	coordinator.ecoEvents = ecoEvents
	metrics.DetailFetchTotal.WithLabelValues("eco", "success").Inc()

	return nil
}

// FetchHistory returns the flattened position samples for the active
// date range. History is consumed directly by the map engine and never
// stored here.
func (coordinator *DetailCoordinator) FetchHistory(vehicleCode string) ([]*fleet.PositionSample, error) {
	coordinator.mutex.RLock()
	windowStart, windowEnd := coordinator.dateRange.QueryWindow()
	coordinator.mutex.RUnlock()

	batches, err := coordinator.provider.GetHistory(vehicleCode, windowStart, windowEnd)
	if err != nil {
		metrics.DetailFetchTotal.WithLabelValues("history", "failed").Inc()
		log.Error().Err(err).Str("vehicle", vehicleCode).Msg("Failed to fetch position history")
		return nil, err
	}

	samples := []*fleet.PositionSample{}
	for _, batch := range batches {
		samples = append(samples, batch.Positions...)
	}

	metrics.DetailFetchTotal.WithLabelValues("history", "success").Inc()

	return samples, nil
}

// SetDateRange stores the new range only. Refetching requires an
// explicit reload so half-picked ranges never trigger requests.
func (coordinator *DetailCoordinator) SetDateRange(dateRange fleet.DateRange) {
	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()

	coordinator.dateRange = dateRange
}

func (coordinator *DetailCoordinator) DateRange() fleet.DateRange {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	return coordinator.dateRange
}

func (coordinator *DetailCoordinator) Trips() []*fleet.Trip {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	trips := []*fleet.Trip{}
	copier.CopyWithOption(&trips, coordinator.trips, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	return trips
}

func (coordinator *DetailCoordinator) EcoEvents() []*fleet.EcoEvent {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	ecoEvents := []*fleet.EcoEvent{}
	copier.CopyWithOption(&ecoEvents, coordinator.ecoEvents, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	return ecoEvents
}

func (coordinator *DetailCoordinator) Snapshot() DetailSnapshot {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	trips := []*fleet.Trip{}
	copier.CopyWithOption(&trips, coordinator.trips, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	ecoEvents := []*fleet.EcoEvent{}
	copier.CopyWithOption(&ecoEvents, coordinator.ecoEvents, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	return DetailSnapshot{
		DateRange: coordinator.dateRange,

		Trips:     trips,
		EcoEvents: ecoEvents,

		LoadingTrips: coordinator.loadingTrips,
		LoadingEco:   coordinator.loadingEco,
	}
}
