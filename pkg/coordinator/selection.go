package coordinator

import (
	"sync"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

// SelectionState guards the current selection. The generation counter
// increases on every vehicle change, which is how in-flight fetches for
// an abandoned selection are recognised when they land.
type SelectionState struct {
	mutex     sync.RWMutex
	selection fleet.Selection
}

func NewSelectionState() *SelectionState {
	return &SelectionState{
		selection: fleet.Selection{
			Tab:  fleet.DetailTabTrips,
			Mode: fleet.MapModeLive,
		},
	}
}

func (state *SelectionState) Current() fleet.Selection {
	state.mutex.RLock()
	defer state.mutex.RUnlock()

	return state.selection
}

// SelectVehicle records a new vehicle, bumps the generation and resets
// the tab and mode to their selection defaults.
func (state *SelectionState) SelectVehicle(vehicleCode string) fleet.Selection {
	state.mutex.Lock()
	defer state.mutex.Unlock()

	state.selection.VehicleCode = vehicleCode
	state.selection.Tab = fleet.DetailTabTrips
	state.selection.Mode = fleet.MapModeLive
	state.selection.Generation += 1

	return state.selection
}

func (state *SelectionState) SetMode(mode fleet.MapMode) fleet.Selection {
	state.mutex.Lock()
	defer state.mutex.Unlock()

	state.selection.Mode = mode

	return state.selection
}

func (state *SelectionState) SetTab(tab fleet.DetailTab) fleet.Selection {
	state.mutex.Lock()
	defer state.mutex.Unlock()

	state.selection.Tab = tab

	return state.selection
}

// Matches reports whether a result dispatched at the given generation is
// still for the current selection.
func (state *SelectionState) Matches(generation uint64) bool {
	state.mutex.RLock()
	defer state.mutex.RUnlock()

	return state.selection.Generation == generation
}
