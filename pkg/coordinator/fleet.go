package coordinator

import (
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/metrics"
)

// FleetCoordinator owns the active group and its vehicle collection. The
// collection is replaced wholesale on every refresh.
type FleetCoordinator struct {
	provider TelemetryProvider

	mutex sync.RWMutex

	group    *fleet.Group
	vehicles []*fleet.Vehicle

	loading       bool
	lastRefreshed string
}

type FleetSnapshot struct {
	Group    *fleet.Group     `groups:"basic"`
	Vehicles []*fleet.Vehicle `groups:"basic"`
	Stats    fleet.Stats      `groups:"basic"`

	Loading       bool   `groups:"basic"`
	LastRefreshed string `groups:"basic"`
}

func NewFleetCoordinator(provider TelemetryProvider) *FleetCoordinator {
	return &FleetCoordinator{
		provider: provider,
	}
}

// Bootstrap selects the first available group and loads its vehicles. No
// groups on the account is a valid terminal state, not a failure.
func (coordinator *FleetCoordinator) Bootstrap() error {
	groups, err := coordinator.provider.ListGroups()
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		log.Info().Msg("No vehicle groups on account, starting empty")
		return nil
	}

	coordinator.mutex.Lock()
	coordinator.group = groups[0]
	coordinator.mutex.Unlock()

	return coordinator.Refresh()
}

// Refresh replaces the vehicle collection from the provider. On failure
// the previous collection is retained untouched.
func (coordinator *FleetCoordinator) Refresh() error {
	coordinator.mutex.Lock()
	if coordinator.group == nil {
		coordinator.mutex.Unlock()
		return nil
	}
	groupCode := coordinator.group.Code
	coordinator.loading = true
	coordinator.mutex.Unlock()

	vehicles, err := coordinator.provider.ListVehicles(groupCode)

	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()

	coordinator.loading = false

	if err != nil {
		metrics.FleetRefreshTotal.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("group", groupCode).Msg("Failed to refresh vehicle list")
		return err
	}

	if vehicles == nil {
		vehicles = []*fleet.Vehicle{}
	}

	coordinator.vehicles = vehicles
	coordinator.lastRefreshed = time.Now().Format("02/01/2006 15:04:05")

	metrics.FleetRefreshTotal.WithLabelValues("success").Inc()
	metrics.FleetVehicles.Set(float64(len(vehicles)))

	return nil
}

// Stats recomputes the derived fleet statistics on every read.
func (coordinator *FleetCoordinator) Stats() fleet.Stats {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	return fleet.CalculateStats(coordinator.vehicles)
}

// Vehicles returns a deep copy of the collection so callers can never
// mutate coordinator state through it.
func (coordinator *FleetCoordinator) Vehicles() []*fleet.Vehicle {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	vehicles := []*fleet.Vehicle{}
	copier.CopyWithOption(&vehicles, coordinator.vehicles, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	return vehicles
}

// Vehicle looks a vehicle up by code in the current collection.
func (coordinator *FleetCoordinator) Vehicle(vehicleCode string) *fleet.Vehicle {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	for _, vehicle := range coordinator.vehicles {
		if vehicle.Code == vehicleCode {
			copiedVehicle := &fleet.Vehicle{}
			copier.CopyWithOption(copiedVehicle, vehicle, copier.Option{IgnoreEmpty: true, DeepCopy: true})

			return copiedVehicle
		}
	}

	return nil
}

func (coordinator *FleetCoordinator) Snapshot() FleetSnapshot {
	coordinator.mutex.RLock()
	defer coordinator.mutex.RUnlock()

	vehicles := []*fleet.Vehicle{}
	copier.CopyWithOption(&vehicles, coordinator.vehicles, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	return FleetSnapshot{
		Group:    coordinator.group,
		Vehicles: vehicles,
		Stats:    fleet.CalculateStats(coordinator.vehicles),

		Loading:       coordinator.loading,
		LastRefreshed: coordinator.lastRefreshed,
	}
}
