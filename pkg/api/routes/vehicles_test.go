package routes

import (
	"testing"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

func filterTestVehicles() []*fleet.Vehicle {
	return []*fleet.Vehicle{
		{Code: "V1", Speed: 0, BatteryPercentage: 80},
		{Code: "V2", Speed: 45, BatteryPercentage: 20},
		{Code: "V3", Speed: 95, BatteryPercentage: fleet.BatteryUnknown},
	}
}

func TestFilterVehicles(t *testing.T) {
	testCases := []struct {
		Name       string
		Expression string
		Expected   []string
	}{
		{Name: "moving only", Expression: "Moving", Expected: []string{"V2", "V3"}},
		{Name: "idle only", Expression: "!Moving", Expected: []string{"V1"}},
		{Name: "speeding", Expression: "Speed > 90", Expected: []string{"V3"}},
		{Name: "low battery", Expression: "BatteryPercentage >= 0 && BatteryPercentage < 30", Expected: []string{"V2"}},
		{Name: "combined", Expression: "Moving && Speed < 50", Expected: []string{"V2"}},
		{Name: "matches nothing", Expression: "Speed > 200", Expected: []string{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			filtered, err := filterVehicles(filterTestVehicles(), testCase.Expression)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(filtered) != len(testCase.Expected) {
				t.Fatalf("expected %d vehicles, got %d", len(testCase.Expected), len(filtered))
			}

			for i, code := range testCase.Expected {
				if filtered[i].Code != code {
					t.Errorf("position %d: expected %s, got %s", i, code, filtered[i].Code)
				}
			}
		})
	}
}

func TestFilterVehiclesRejectsBadExpressions(t *testing.T) {
	if _, err := filterVehicles(filterTestVehicles(), "Speed >"); err == nil {
		t.Error("a malformed expression should fail to compile")
	}

	if _, err := filterVehicles(filterTestVehicles(), "Odometer > 10"); err == nil {
		t.Error("an unknown field should fail to compile")
	}

	if _, err := filterVehicles(filterTestVehicles(), "Speed + 1"); err == nil {
		t.Error("a non-boolean expression should be rejected")
	}
}
