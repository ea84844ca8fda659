package coordinator

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/metrics"
)

// EnrichmentCoordinator owns the weather and address decoration for the
// current selection. Both fetches are best effort: failures are logged
// and swallowed, and a result whose dispatch generation has been
// superseded is discarded rather than applied.
type EnrichmentCoordinator struct {
	weather   WeatherProvider
	geocode   AddressProvider
	selection *SelectionState

	mutex sync.RWMutex

	currentWeather *fleet.WeatherSnapshot
	currentAddress *fleet.AddressLabel

	loadingWeather bool
}

type EnrichmentSnapshot struct {
	Weather *fleet.WeatherSnapshot `groups:"basic"`
	Address *fleet.AddressLabel    `groups:"basic"`

	LoadingWeather bool `groups:"basic"`
}

func NewEnrichmentCoordinator(weather WeatherProvider, geocode AddressProvider, selection *SelectionState) *EnrichmentCoordinator {
	return &EnrichmentCoordinator{
		weather:   weather,
		geocode:   geocode,
		selection: selection,
	}
}

// Clear wipes the decoration. Runs synchronously during a selection
// change so no view can transiently show the previous vehicle's weather
// or address.
func (coordinator *EnrichmentCoordinator) Clear() {
	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()

	coordinator.currentWeather = nil
	coordinator.currentAddress = nil
	coordinator.loadingWeather = false
}

// Enrich fetches weather and address for the coordinate pair. It blocks
// until both settle, so callers run it in the background.
func (coordinator *EnrichmentCoordinator) Enrich(latitude float64, longitude float64, generation uint64) {
	coordinator.mutex.Lock()
	if !coordinator.selection.Matches(generation) {
		coordinator.mutex.Unlock()
		return
	}
	coordinator.currentWeather = nil
	coordinator.currentAddress = nil
	coordinator.loadingWeather = true
	coordinator.mutex.Unlock()

	fetchPool := pool.New()

	fetchPool.Go(func() {
		snapshot, err := coordinator.weather.GetWeather(latitude, longitude)

		coordinator.mutex.Lock()
		defer coordinator.mutex.Unlock()

		if !coordinator.selection.Matches(generation) {
			metrics.StaleResultsDiscarded.WithLabelValues("weather").Inc()
			return
		}

		coordinator.loadingWeather = false

		if err != nil {
			metrics.EnrichmentFailures.WithLabelValues("weather").Inc()
			log.Debug().Err(err).Msg("Weather lookup failed")
			return
		}

		coordinator.currentWeather = snapshot
	})

	fetchPool.Go(func() {
		label, err := coordinator.geocode.GetAddress(latitude, longitude)

		coordinator.mutex.Lock()
		defer coordinator.mutex.Unlock()

		if !coordinator.selection.Matches(generation) {
			metrics.StaleResultsDiscarded.WithLabelValues("address").Inc()
			return
		}

		if err != nil {
			metrics.EnrichmentFailures.WithLabelValues("geocoding").Inc()
			log.Debug().Err(err).Msg("Reverse geocoding failed")
			return
		}

		coordinator.currentAddress = label
	})

	fetchPool.Wait()
}

func (coordinator *EnrichmentCoordinator) Snapshot() EnrichmentSnapshot {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	return EnrichmentSnapshot{
		Weather: coordinator.currentWeather,
		Address: coordinator.currentAddress,

		LoadingWeather: coordinator.loadingWeather,
	}
}
