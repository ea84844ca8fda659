package fleet

import (
	"math"
	"testing"
)

func TestEcoEventSpeedLabel(t *testing.T) {
	tests := []struct {
		name     string
		speed    int32
		known    bool
		expected string
	}{
		{"normal reading", 57, true, "57"},
		{"zero reading", 0, true, "0"},
		{"unavailable sentinel", math.MinInt32, false, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := EcoEvent{VehicleCode: "V1", Speed: tt.speed}

			if event.SpeedKnown() != tt.known {
				t.Errorf("expected SpeedKnown %v, got %v", tt.known, event.SpeedKnown())
			}

			if event.SpeedLabel() != tt.expected {
				t.Errorf("expected label %q, got %q", tt.expected, event.SpeedLabel())
			}
		})
	}
}

func TestEcoEventTypeLabel(t *testing.T) {
	tests := []struct {
		name      string
		eventType int
		expected  string
	}{
		{"harsh braking", 2, "Harsh Braking"},
		{"unknown code zero", 0, "Unknown"},
		{"out of table falls back", 42, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := EcoEvent{EventType: tt.eventType}

			if event.TypeLabel() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, event.TypeLabel())
			}
		})
	}
}

func TestEcoEventSeverityLabel(t *testing.T) {
	event := EcoEvent{Severity: 3}
	if event.SeverityLabel() != "Severe" {
		t.Errorf("expected Severe, got %q", event.SeverityLabel())
	}

	outOfRange := EcoEvent{Severity: 9}
	if outOfRange.SeverityLabel() != "Info" {
		t.Errorf("expected fallback Info, got %q", outOfRange.SeverityLabel())
	}
}
