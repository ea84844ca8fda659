package charts

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Render target names the dashboard binds charts to.
const (
	TargetSpeed = "speed"
	TargetEco   = "eco"
)

// ChartInstance is one bound chart. Instances are destroyed and rebuilt
// on every draw, never mutated, so a stale binding can never survive a
// redraw.
type ChartInstance struct {
	ID     uint64 `groups:"basic"`
	Target string `groups:"basic"`

	Dataset Dataset `groups:"basic"`

	DrawnAt time.Time `groups:"basic"`
}

type renderTarget struct {
	active bool
	chart  *ChartInstance
}

// Renderer owns the named render targets. A target only accepts draws
// while its surface is marked present, which keeps a redraw from racing
// ahead of the view that will host it.
type Renderer struct {
	mutex    sync.Mutex
	targets  map[string]*renderTarget
	sequence uint64
}

func NewRenderer() *Renderer {
	return &Renderer{
		targets: map[string]*renderTarget{},
	}
}

// Activate marks a target's surface as present.
func (renderer *Renderer) Activate(name string) {
	renderer.mutex.Lock()
	defer renderer.mutex.Unlock()

	target := renderer.targets[name]
	if target == nil {
		target = &renderTarget{}
		renderer.targets[name] = target
	}

	target.active = true
}

// Deactivate destroys any bound chart and marks the surface gone.
func (renderer *Renderer) Deactivate(name string) {
	renderer.mutex.Lock()
	defer renderer.mutex.Unlock()

	target := renderer.targets[name]
	if target == nil {
		return
	}

	target.active = false
	target.chart = nil
}

// Draw destroys the chart bound to the target and binds a fresh one for
// the dataset. Drawing to an inactive target is a silent no-op, reported
// in the return so callers can tell the draw never landed.
func (renderer *Renderer) Draw(name string, dataset Dataset) bool {
	renderer.mutex.Lock()
	defer renderer.mutex.Unlock()

	target := renderer.targets[name]
	if target == nil || !target.active {
		log.Debug().Str("target", name).Msg("Skipping draw to inactive render target")

		return false
	}

	renderer.sequence += 1
	target.chart = &ChartInstance{
		ID:      renderer.sequence,
		Target:  name,
		Dataset: dataset,
		DrawnAt: time.Now(),
	}

	return true
}

// Chart returns a copy of the instance bound to a target, or nil when
// nothing is bound.
func (renderer *Renderer) Chart(name string) *ChartInstance {
	renderer.mutex.Lock()
	defer renderer.mutex.Unlock()

	target := renderer.targets[name]
	if target == nil || target.chart == nil {
		return nil
	}

	instance := *target.chart

	return &instance
}

// Active reports whether a target's surface is currently present.
func (renderer *Renderer) Active(name string) bool {
	renderer.mutex.Lock()
	defer renderer.mutex.Unlock()

	target := renderer.targets[name]

	return target != nil && target.active
}
