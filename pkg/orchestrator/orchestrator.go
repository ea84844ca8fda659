package orchestrator

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/fleetdeck/fleetdeck/pkg/charts"
	"github.com/fleetdeck/fleetdeck/pkg/coordinator"
	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/maprender"
	"github.com/fleetdeck/fleetdeck/pkg/metrics"
)

// Orchestrator sequences the dashboard's user-triggered events across
// the coordinators, the map engine and the chart renderer. Event
// handling is serialized under one mutex; fetches that feed panels run
// in the background carrying the selection generation current at
// dispatch, so a response for an abandoned selection can never render.
type Orchestrator struct {
	mutex sync.Mutex

	selection  *coordinator.SelectionState
	fleetState *coordinator.FleetCoordinator
	detail     *coordinator.DetailCoordinator
	enrichment *coordinator.EnrichmentCoordinator

	mapEngine *maprender.Engine
	renderer  *charts.Renderer

	tasks conc.WaitGroup

	refreshInterval time.Duration
	stopRefresh     chan struct{}
}

// DashboardState is the aggregate read model served to the
// presentation layer.
type DashboardState struct {
	Selection fleet.Selection `groups:"basic"`

	Fleet      coordinator.FleetSnapshot      `groups:"basic"`
	Detail     coordinator.DetailSnapshot     `groups:"basic"`
	Enrichment coordinator.EnrichmentSnapshot `groups:"basic"`
}

func New(
	selection *coordinator.SelectionState,
	fleetState *coordinator.FleetCoordinator,
	detail *coordinator.DetailCoordinator,
	enrichment *coordinator.EnrichmentCoordinator,
	mapEngine *maprender.Engine,
	renderer *charts.Renderer,
	refreshInterval time.Duration,
) *Orchestrator {
	return &Orchestrator{
		selection:  selection,
		fleetState: fleetState,
		detail:     detail,
		enrichment: enrichment,

		mapEngine: mapEngine,
		renderer:  renderer,

		refreshInterval: refreshInterval,
	}
}

// Start brings the surfaces up, loads the fleet and begins the periodic
// refresh.
func (orchestrator *Orchestrator) Start() error {
	orchestrator.mutex.Lock()
	defer orchestrator.mutex.Unlock()

	orchestrator.mapEngine.Attach()
	orchestrator.renderer.Activate(charts.TargetSpeed)

	if err := orchestrator.fleetState.Bootstrap(); err != nil {
		return err
	}

	vehicles := orchestrator.fleetState.Vehicles()
	orchestrator.mapEngine.UpdateMarkers(vehicles)
	orchestrator.mapEngine.FitAll(vehicles)

	if orchestrator.refreshInterval > 0 {
		orchestrator.stopRefresh = make(chan struct{})
		go orchestrator.refreshLoop(orchestrator.stopRefresh)

		log.Info().Dur("interval", orchestrator.refreshInterval).Msg("Periodic fleet refresh started")
	}

	return nil
}

// Stop halts the periodic refresh, drains background work and tears the
// surfaces down.
func (orchestrator *Orchestrator) Stop() {
	orchestrator.mutex.Lock()
	if orchestrator.stopRefresh != nil {
		close(orchestrator.stopRefresh)
		orchestrator.stopRefresh = nil
	}
	orchestrator.mutex.Unlock()

	orchestrator.tasks.Wait()

	orchestrator.renderer.Deactivate(charts.TargetSpeed)
	orchestrator.renderer.Deactivate(charts.TargetEco)
	orchestrator.mapEngine.Detach()
}

func (orchestrator *Orchestrator) refreshLoop(stop chan struct{}) {
	ticker := time.NewTicker(orchestrator.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := orchestrator.RefreshFleet(); err != nil {
				log.Error().Err(err).Msg("Periodic fleet refresh failed")
			}
		case <-stop:
			return
		}
	}
}

// SelectVehicle handles a list or marker click. All state belonging to
// the previous vehicle is cleared before any fetch for the new one is
// issued, then the trips fetch and the enrichment lookups run in the
// background under the new selection generation.
func (orchestrator *Orchestrator) SelectVehicle(vehicleCode string) error {
	orchestrator.mutex.Lock()
	defer orchestrator.mutex.Unlock()

	vehicle := orchestrator.fleetState.Vehicle(vehicleCode)
	if vehicle == nil {
		return fmt.Errorf("unknown vehicle %s", vehicleCode)
	}

	selection := orchestrator.selection.SelectVehicle(vehicleCode)
	generation := selection.Generation

	metrics.SelectionChanges.Inc()

	// Selection always lands in live mode
	if orchestrator.mapEngine.Mode() == fleet.MapModeHistory {
		if err := orchestrator.mapEngine.ShowLive(); err != nil {
			return err
		}
	} else {
		orchestrator.mapEngine.ClearHistory()
	}

	orchestrator.mapEngine.PanTo(vehicle)

	orchestrator.enrichment.Clear()
	orchestrator.detail.Clear()

	orchestrator.renderer.Deactivate(charts.TargetEco)
	orchestrator.renderer.Activate(charts.TargetSpeed)

	orchestrator.tasks.Go(func() {
		orchestrator.fetchAndDrawTrips(vehicleCode, generation)
	})

	latitude, longitude, resolvable := vehicle.Position()
	if resolvable {
		orchestrator.tasks.Go(func() {
			orchestrator.enrichment.Enrich(latitude, longitude, generation)
		})
	}

	return nil
}

// ToggleMode switches the map between live and history. Entering
// history fetches the trail for the active date range before the
// transition; a failed fetch surfaces and leaves the mode alone.
func (orchestrator *Orchestrator) ToggleMode(mode fleet.MapMode) error {
	orchestrator.mutex.Lock()
	defer orchestrator.mutex.Unlock()

	current := orchestrator.selection.Current()
	if mode == current.Mode {
		return nil
	}

	if mode == fleet.MapModeHistory {
		if !current.HasVehicle() {
			// The control is disabled without a selection; treat a
			// stray request like leaving history
			orchestrator.mapEngine.ClearHistory()

			return nil
		}

		samples, err := orchestrator.detail.FetchHistory(current.VehicleCode)
		if err != nil {
			return err
		}

		orchestrator.selection.SetMode(fleet.MapModeHistory)

		return orchestrator.mapEngine.ShowHistory(samples)
	}

	orchestrator.selection.SetMode(fleet.MapModeLive)

	return orchestrator.mapEngine.ShowLive()
}

// SwitchTab changes the detail tab, moves the chart surface across and
// refetches the tab's dataset in the background. No-op without a
// selection.
func (orchestrator *Orchestrator) SwitchTab(tab fleet.DetailTab) error {
	orchestrator.mutex.Lock()
	defer orchestrator.mutex.Unlock()

	current := orchestrator.selection.Current()
	if !current.HasVehicle() || tab == current.Tab {
		return nil
	}

	orchestrator.selection.SetTab(tab)

	if tab == fleet.DetailTabEco {
		orchestrator.renderer.Deactivate(charts.TargetSpeed)
		orchestrator.renderer.Activate(charts.TargetEco)
	} else {
		orchestrator.renderer.Deactivate(charts.TargetEco)
		orchestrator.renderer.Activate(charts.TargetSpeed)
	}

	orchestrator.dispatchTabFetch(tab, current.VehicleCode, current.Generation)

	return nil
}

// Reload refetches the active tab's dataset for the current selection,
// applying whatever date range is now stored.
func (orchestrator *Orchestrator) Reload() error {
	orchestrator.mutex.Lock()
	defer orchestrator.mutex.Unlock()

	current := orchestrator.selection.Current()
	if !current.HasVehicle() {
		return nil
	}

	orchestrator.dispatchTabFetch(current.Tab, current.VehicleCode, current.Generation)

	return nil
}

// SetDateRange stores a new date range without fetching anything. The
// explicit reload applies it.
func (orchestrator *Orchestrator) SetDateRange(dateRange fleet.DateRange) {
	orchestrator.mutex.Lock()
	defer orchestrator.mutex.Unlock()

	orchestrator.detail.SetDateRange(dateRange)
}

// RefreshFleet reloads the vehicle collection and re-renders the live
// markers from it.
func (orchestrator *Orchestrator) RefreshFleet() error {
	orchestrator.mutex.Lock()
	defer orchestrator.mutex.Unlock()

	if err := orchestrator.fleetState.Refresh(); err != nil {
		return err
	}

	orchestrator.mapEngine.UpdateMarkers(orchestrator.fleetState.Vehicles())

	return nil
}

func (orchestrator *Orchestrator) dispatchTabFetch(tab fleet.DetailTab, vehicleCode string, generation uint64) {
	orchestrator.tasks.Go(func() {
		if tab == fleet.DetailTabEco {
			orchestrator.fetchAndDrawEco(vehicleCode, generation)
		} else {
			orchestrator.fetchAndDrawTrips(vehicleCode, generation)
		}
	})
}

// fetchAndDrawTrips loads trips and redraws the speed chart. The chart
// is always built from the coordinator's current state, never from the
// fetch payload, so it can only ever show what the dashboard holds.
func (orchestrator *Orchestrator) fetchAndDrawTrips(vehicleCode string, generation uint64) {
	if err := orchestrator.detail.FetchTrips(vehicleCode, generation); err != nil {
		return
	}

	if !orchestrator.selection.Matches(generation) {
		return
	}

	orchestrator.renderer.Draw(charts.TargetSpeed, charts.SpeedDataset(orchestrator.detail.Trips()))
}

func (orchestrator *Orchestrator) fetchAndDrawEco(vehicleCode string, generation uint64) {
	if err := orchestrator.detail.FetchEco(vehicleCode, generation); err != nil {
		return
	}

	if !orchestrator.selection.Matches(generation) {
		return
	}

	orchestrator.renderer.Draw(charts.TargetEco, charts.EcoDataset(orchestrator.detail.EcoEvents()))
}

// WaitIdle blocks until all dispatched background work has finished.
func (orchestrator *Orchestrator) WaitIdle() {
	orchestrator.tasks.Wait()
}

// State assembles the aggregate read model.
func (orchestrator *Orchestrator) State() DashboardState {
	return DashboardState{
		Selection: orchestrator.selection.Current(),

		Fleet:      orchestrator.fleetState.Snapshot(),
		Detail:     orchestrator.detail.Snapshot(),
		Enrichment: orchestrator.enrichment.Snapshot(),
	}
}

func (orchestrator *Orchestrator) MapSnapshot() maprender.Snapshot {
	return orchestrator.mapEngine.Snapshot()
}

func (orchestrator *Orchestrator) Chart(target string) *charts.ChartInstance {
	return orchestrator.renderer.Chart(target)
}

func (orchestrator *Orchestrator) Vehicles() []*fleet.Vehicle {
	return orchestrator.fleetState.Vehicles()
}

func (orchestrator *Orchestrator) DateRange() fleet.DateRange {
	return orchestrator.detail.DateRange()
}
