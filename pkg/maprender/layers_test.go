package maprender

import (
	"testing"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

func TestSpeedColor(t *testing.T) {
	testCases := []struct {
		Speed float64
		Color string
	}{
		{Speed: 0, Color: segmentColorGreen},
		{Speed: 60, Color: segmentColorGreen},
		{Speed: 60.1, Color: segmentColorAmber},
		{Speed: 90, Color: segmentColorAmber},
		{Speed: 90.1, Color: segmentColorRed},
		{Speed: 140, Color: segmentColorRed},
	}

	for _, testCase := range testCases {
		if color := speedColor(testCase.Speed); color != testCase.Color {
			t.Errorf("speed %.1f: expected %s, got %s", testCase.Speed, testCase.Color, color)
		}
	}
}

func TestBuildRouteSegmentColoring(t *testing.T) {
	segments, markers := buildRoute([]*fleet.PositionSample{
		{Latitude: 51.50, Longitude: -0.12, Speed: 50},
		{Latitude: 51.51, Longitude: -0.13, Speed: 70},
		{Latitude: 51.52, Longitude: -0.14, Speed: 100},
	})

	if len(segments) != 2 {
		t.Fatalf("3 samples should yield 2 segments, got %d", len(segments))
	}

	// Each segment takes its color from the sample it starts at
	if segments[0].Color != segmentColorGreen {
		t.Errorf("first segment: expected green, got %s", segments[0].Color)
	}
	if segments[1].Color != segmentColorAmber {
		t.Errorf("second segment: expected amber, got %s", segments[1].Color)
	}

	if len(markers) != 2 {
		t.Fatalf("expected start and end markers, got %d", len(markers))
	}
	if markers[0].Style != MarkerStyleStart || markers[1].Style != MarkerStyleEnd {
		t.Error("trail endpoints should carry start/end styles")
	}
}

func TestBuildRouteSkipsInvalidSamples(t *testing.T) {
	segments, markers := buildRoute([]*fleet.PositionSample{
		{Latitude: 51.50, Longitude: -0.12, Speed: 40},
		{Latitude: 999, Longitude: -0.13, Speed: 40},
		{Latitude: 51.52, Longitude: -0.14, Speed: 40},
	})

	if len(segments) != 1 {
		t.Errorf("invalid sample should be dropped leaving 1 segment, got %d", len(segments))
	}
	if len(markers) != 2 {
		t.Errorf("expected start and end markers, got %d", len(markers))
	}
}

func TestBuildRouteSinglePoint(t *testing.T) {
	segments, markers := buildRoute([]*fleet.PositionSample{
		{Latitude: 51.50, Longitude: -0.12, Speed: 40},
	})

	if len(segments) != 0 {
		t.Errorf("one point draws no segments, got %d", len(segments))
	}
	if len(markers) != 1 {
		t.Fatalf("expected only the start marker, got %d", len(markers))
	}
	if markers[0].Style != MarkerStyleStart {
		t.Errorf("expected start style, got %s", markers[0].Style)
	}
}

func TestBuildRouteEmpty(t *testing.T) {
	segments, markers := buildRoute(nil)

	if len(segments) != 0 || len(markers) != 0 {
		t.Error("an empty trail renders nothing")
	}
}

func TestBoundingBoxPadding(t *testing.T) {
	box := NewBoundingBox(LatLng{Latitude: 51.50, Longitude: -0.12})
	box.Extend(LatLng{Latitude: 51.60, Longitude: -0.02})

	padded := box.Padded(0.1)
	if padded.MinLatitude >= box.MinLatitude || padded.MaxLatitude <= box.MaxLatitude {
		t.Errorf("padding should widen the box, got %+v", padded)
	}

	// A single-point box still pads to a non-degenerate area
	point := NewBoundingBox(LatLng{Latitude: 51.50, Longitude: -0.12})
	padded = point.Padded(0.1)
	if padded.MinLatitude == padded.MaxLatitude || padded.MinLongitude == padded.MaxLongitude {
		t.Errorf("zero-span box should pad to an area, got %+v", padded)
	}

	center := padded.Center()
	if center.Latitude != 51.50 || center.Longitude != -0.12 {
		t.Errorf("padding should not move the center, got %+v", center)
	}
}
