package maprender

import (
	"golang.org/x/exp/slices"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/util"
)

type MarkerStyle string

const (
	MarkerStyleActive  MarkerStyle = "active"
	MarkerStyleNeutral             = "neutral"
	MarkerStyleStart               = "start"
	MarkerStyleEnd                 = "end"
)

type Marker struct {
	VehicleCode string `groups:"basic"`
	Label       string `groups:"basic"`

	Position LatLng      `groups:"basic"`
	Style    MarkerStyle `groups:"basic"`
}

type SegmentStyle string

const (
	SegmentStyleSolid  SegmentStyle = "solid"
	SegmentStyleDashed              = "dashed"
)

const (
	segmentColorGreen = "#2e7d32"
	segmentColorAmber = "#f9a825"
	segmentColorRed   = "#c62828"
)

type RouteSegment struct {
	Start LatLng `groups:"basic"`
	End   LatLng `groups:"basic"`

	Color string       `groups:"basic"`
	Style SegmentStyle `groups:"basic"`
}

// speedColor assigns the 3-tier severity color for a segment.
func speedColor(speed float64) string {
	if speed <= 60 {
		return segmentColorGreen
	}
	if speed <= 90 {
		return segmentColorAmber
	}

	return segmentColorRed
}

// buildVehicleMarkers renders one marker per vehicle with a parseable
// last position. Idle vehicles get the neutral treatment, moving ones
// the active treatment. Vehicles without a resolvable position are
// excluded entirely.
func buildVehicleMarkers(vehicles []*fleet.Vehicle) []Marker {
	markers := []Marker{}

	for _, vehicle := range vehicles {
		latitude, longitude, ok := vehicle.Position()
		if !ok {
			continue
		}

		var style MarkerStyle = MarkerStyleNeutral
		if vehicle.IsMoving() {
			style = MarkerStyleActive
		}

		markers = append(markers, Marker{
			VehicleCode: vehicle.Code,
			Label:       vehicle.Name,

			Position: LatLng{Latitude: latitude, Longitude: longitude},
			Style:    style,
		})
	}

	return markers
}

// buildRoute turns a position trail into connected segments, each
// colored by the speed at its starting sample, plus distinct start and
// end markers. Invalid samples are dropped before segmenting.
func buildRoute(samples []*fleet.PositionSample) ([]RouteSegment, []Marker) {
	points := slices.Clone(samples)
	util.InPlaceFilter(&points, (*fleet.PositionSample).Valid)

	if len(points) == 0 {
		return []RouteSegment{}, []Marker{}
	}

	segments := []RouteSegment{}
	for i := 1; i < len(points); i++ {
		segments = append(segments, RouteSegment{
			Start: LatLng{Latitude: points[i-1].Latitude, Longitude: points[i-1].Longitude},
			End:   LatLng{Latitude: points[i].Latitude, Longitude: points[i].Longitude},

			Color: speedColor(points[i-1].Speed),
			Style: SegmentStyleSolid,
		})
	}

	markers := []Marker{
		{
			Position: LatLng{Latitude: points[0].Latitude, Longitude: points[0].Longitude},
			Style:    MarkerStyleStart,
		},
	}

	if len(points) > 1 {
		last := points[len(points)-1]
		markers = append(markers, Marker{
			Position: LatLng{Latitude: last.Latitude, Longitude: last.Longitude},
			Style:    MarkerStyleEnd,
		})
	}

	return segments, markers
}

// buildTripPins renders the start/finish pin pair for a single trip with
// a dashed guide line between them.
func buildTripPins(trip *fleet.Trip) ([]RouteSegment, []Marker) {
	start := LatLng{Latitude: trip.StartLatitude, Longitude: trip.StartLongitude}
	end := LatLng{Latitude: trip.EndLatitude, Longitude: trip.EndLongitude}

	segments := []RouteSegment{
		{
			Start: start,
			End:   end,

			Color: segmentColorGreen,
			Style: SegmentStyleDashed,
		},
	}

	markers := []Marker{
		{Position: start, Style: MarkerStyleStart, Label: trip.StartAddress},
		{Position: end, Style: MarkerStyleEnd, Label: trip.EndAddress},
	}

	return segments, markers
}

// routeBounds fits a bounding box around every rendered point.
func routeBounds(segments []RouteSegment, markers []Marker) *BoundingBox {
	var box *BoundingBox

	extend := func(point LatLng) {
		if box == nil {
			newBox := NewBoundingBox(point)
			box = &newBox
			return
		}
		box.Extend(point)
	}

	for _, segment := range segments {
		extend(segment.Start)
		extend(segment.End)
	}
	for _, marker := range markers {
		extend(marker.Position)
	}

	return box
}
