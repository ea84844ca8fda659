package maprender

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

const (
	defaultZoom = 6.0
	panZoom     = 15.0

	fitPaddingFraction = 0.1
)

// Engine owns the map surface: the live marker layer, the history route
// layer and the viewport. Nothing else mutates them. The surface is
// created lazily on Attach and torn down exactly once on Detach; every
// operation on a detached engine is a silent no-op.
type Engine struct {
	mutex sync.RWMutex

	attached bool
	machine  *modeMachine

	liveMarkers   []Marker
	routeSegments []RouteSegment
	routeMarkers  []Marker

	viewport Viewport

	lastVehicles []*fleet.Vehicle
}

type Snapshot struct {
	Attached bool          `groups:"basic"`
	Mode     fleet.MapMode `groups:"basic"`

	Markers       []Marker       `groups:"basic"`
	RouteSegments []RouteSegment `groups:"basic"`
	RouteMarkers  []Marker       `groups:"basic"`

	Viewport Viewport `groups:"basic"`
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.machine = newModeMachine(engine)

	return engine
}

// Attach creates the surface. Calling it on an already attached engine
// is a no-op, so the surface can never be double-initialized.
func (engine *Engine) Attach() {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if engine.attached {
		return
	}

	engine.attached = true
	engine.liveMarkers = []Marker{}
	engine.routeSegments = []RouteSegment{}
	engine.routeMarkers = []Marker{}
	engine.viewport = Viewport{
		Center: LatLng{Latitude: 54.0, Longitude: -2.0},
		Zoom:   defaultZoom,
	}

	engine.machine.reset()

	log.Debug().Msg("Map surface attached")
}

// Detach tears the surface down. Safe to call when never attached and
// idempotent across repeated calls.
func (engine *Engine) Detach() {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached {
		return
	}

	engine.attached = false
	engine.liveMarkers = nil
	engine.routeSegments = nil
	engine.routeMarkers = nil
	engine.lastVehicles = nil

	log.Debug().Msg("Map surface detached")
}

func (engine *Engine) Attached() bool {
	engine.mutex.RLock()
	defer engine.mutex.RUnlock()

	return engine.attached
}

func (engine *Engine) Mode() fleet.MapMode {
	return engine.machine.mode()
}

// UpdateMarkers replaces the live marker set from the vehicle
// collection. While in history mode the marker layer stays empty and
// the collection is only remembered for the next return to live.
func (engine *Engine) UpdateMarkers(vehicles []*fleet.Vehicle) {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached {
		return
	}

	engine.lastVehicles = vehicles

	if engine.machine.mode() == fleet.MapModeLive {
		engine.liveMarkers = buildVehicleMarkers(vehicles)
	}
}

// DrawHistory renders a position trail on the route layer, replacing
// its previous content. The marker layer is untouched. The viewport is
// fit to the trail's bounding box with padding.
func (engine *Engine) DrawHistory(samples []*fleet.PositionSample) {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached {
		return
	}

	engine.drawHistoryLocked(samples)
}

// drawHistoryLocked rebuilds the route layer from a trail. Caller holds
// the mutex.
func (engine *Engine) drawHistoryLocked(samples []*fleet.PositionSample) {
	segments, markers := buildRoute(samples)
	engine.routeSegments = segments
	engine.routeMarkers = markers

	engine.fitRouteLocked()
}

// DrawTripPins overlays the start/finish pins for one trip, replacing
// any existing route layer content. Works in either mode.
func (engine *Engine) DrawTripPins(trip *fleet.Trip) {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached || trip == nil {
		return
	}

	segments, markers := buildTripPins(trip)
	engine.routeSegments = segments
	engine.routeMarkers = markers

	engine.fitRouteLocked()
}

// ClearHistory empties the route layer. The marker layer is untouched.
func (engine *Engine) ClearHistory() {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached {
		return
	}

	engine.routeSegments = []RouteSegment{}
	engine.routeMarkers = []Marker{}
}

// PanTo centers the viewport on a vehicle. No-op when the vehicle has
// no resolvable coordinates.
func (engine *Engine) PanTo(vehicle *fleet.Vehicle) {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached || vehicle == nil {
		return
	}

	latitude, longitude, ok := vehicle.Position()
	if !ok {
		return
	}

	engine.viewport = Viewport{
		Center: LatLng{Latitude: latitude, Longitude: longitude},
		Zoom:   panZoom,
	}
}

// FitAll fits the viewport around every vehicle with a resolvable
// position. No-op when none resolve.
func (engine *Engine) FitAll(vehicles []*fleet.Vehicle) {
	engine.mutex.Lock()
	defer engine.mutex.Unlock()

	if !engine.attached {
		return
	}

	var box *BoundingBox
	for _, vehicle := range vehicles {
		latitude, longitude, ok := vehicle.Position()
		if !ok {
			continue
		}

		point := LatLng{Latitude: latitude, Longitude: longitude}
		if box == nil {
			newBox := NewBoundingBox(point)
			box = &newBox
		} else {
			box.Extend(point)
		}
	}

	if box == nil {
		return
	}

	padded := box.Padded(fitPaddingFraction)
	engine.viewport = Viewport{
		Center: padded.Center(),
		Bounds: &padded,
	}
}

// ShowHistory transitions live → history, clearing the marker layer and
// rendering the supplied trail.
func (engine *Engine) ShowHistory(samples []*fleet.PositionSample) error {
	if !engine.Attached() {
		return nil
	}

	return engine.machine.showHistory(samples)
}

// ShowLive transitions history → live, clearing the route layer and
// restoring markers for the last known vehicle collection.
func (engine *Engine) ShowLive() error {
	if !engine.Attached() {
		return nil
	}

	return engine.machine.showLive()
}

func (engine *Engine) Snapshot() Snapshot {
	engine.mutex.RLock()
	defer engine.mutex.RUnlock()

	markers := make([]Marker, len(engine.liveMarkers))
	copy(markers, engine.liveMarkers)

	routeSegments := make([]RouteSegment, len(engine.routeSegments))
	copy(routeSegments, engine.routeSegments)

	routeMarkers := make([]Marker, len(engine.routeMarkers))
	copy(routeMarkers, engine.routeMarkers)

	return Snapshot{
		Attached: engine.attached,
		Mode:     engine.machine.mode(),

		Markers:       markers,
		RouteSegments: routeSegments,
		RouteMarkers:  routeMarkers,

		Viewport: engine.viewport,
	}
}

// fitRouteLocked fits the viewport to the current route layer. Caller
// holds the mutex.
func (engine *Engine) fitRouteLocked() {
	box := routeBounds(engine.routeSegments, engine.routeMarkers)
	if box == nil {
		return
	}

	padded := box.Padded(fitPaddingFraction)
	engine.viewport = Viewport{
		Center: padded.Center(),
		Bounds: &padded,
	}
}

// clearMarkersLocked is the history-mode marker wipe. Caller holds the
// mutex.
func (engine *Engine) clearMarkersLocked() {
	engine.liveMarkers = []Marker{}
}

// restoreMarkersLocked re-renders the live marker set from the last
// vehicle collection. Caller holds the mutex.
func (engine *Engine) restoreMarkersLocked() {
	engine.liveMarkers = buildVehicleMarkers(engine.lastVehicles)
	engine.routeSegments = []RouteSegment{}
	engine.routeMarkers = []Marker{}
}
