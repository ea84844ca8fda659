package maprender

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/util"
)

const (
	eventShowHistory = "show_history"
	eventShowLive    = "show_live"
)

// modeMachine owns the live/history mode state. Mode changes go through
// fsm events so layer swaps always happen alongside the transition.
type modeMachine struct {
	*fsm.FSM

	engine *Engine
}

func newModeMachine(engine *Engine) *modeMachine {
	machine := &modeMachine{engine: engine}

	events := fsm.Events{
		{Name: eventShowHistory, Src: []string{string(fleet.MapModeLive)}, Dst: string(fleet.MapModeHistory)},
		{Name: eventShowLive, Src: []string{string(fleet.MapModeHistory)}, Dst: string(fleet.MapModeLive)},
	}

	callbacks := fsm.Callbacks{
		"enter_" + string(fleet.MapModeHistory): util.WrapEvent(machine.enterHistory),
		"enter_" + string(fleet.MapModeLive):    util.WrapEvent(machine.enterLive),
	}

	machine.FSM = fsm.NewFSM(string(fleet.MapModeLive), events, callbacks)

	return machine
}

func (machine *modeMachine) mode() fleet.MapMode {
	return fleet.MapMode(machine.Current())
}

func (machine *modeMachine) reset() {
	machine.SetState(string(fleet.MapModeLive))
}

func (machine *modeMachine) showHistory(samples []*fleet.PositionSample) error {
	return machine.Event(context.Background(), eventShowHistory, samples)
}

func (machine *modeMachine) showLive() error {
	return machine.Event(context.Background(), eventShowLive)
}

// enterHistory clears the marker layer and renders the supplied trail.
func (machine *modeMachine) enterHistory(ctx context.Context, event *fsm.Event) error {
	samples := []*fleet.PositionSample{}
	if len(event.Args) > 0 {
		if supplied, ok := event.Args[0].([]*fleet.PositionSample); ok {
			samples = supplied
		}
	}

	engine := machine.engine

	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached {
		return nil
	}

	engine.clearMarkersLocked()
	engine.drawHistoryLocked(samples)

	return nil
}

// enterLive clears the route layer and restores the live marker set.
func (machine *modeMachine) enterLive(ctx context.Context, event *fsm.Event) error {
	engine := machine.engine

	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached {
		return nil
	}

	engine.restoreMarkersLocked()

	return nil
}
