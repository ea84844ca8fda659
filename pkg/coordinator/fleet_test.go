package coordinator

import (
	"errors"
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

func TestFleetCoordinatorBootstrapWithoutGroups(t *testing.T) {
	fake := &fakeTelemetry{
		listGroups: func() ([]*fleet.Group, error) {
			return []*fleet.Group{}, nil
		},
	}

	fleetCoordinator := NewFleetCoordinator(fake)

	if err := fleetCoordinator.Bootstrap(); err != nil {
		t.Fatalf("an empty account is not a failure, got %v", err)
	}

	snapshot := fleetCoordinator.Snapshot()
	if snapshot.Group != nil {
		t.Errorf("expected no active group, got %+v", snapshot.Group)
	}
	if len(snapshot.Vehicles) != 0 {
		t.Errorf("expected no vehicles, got %d", len(snapshot.Vehicles))
	}
}

func TestFleetCoordinatorBootstrapSelectsFirstGroup(t *testing.T) {
	fake := &fakeTelemetry{
		listGroups: func() ([]*fleet.Group, error) {
			return []*fleet.Group{
				{Code: "G1", Name: "North Depot"},
				{Code: "G2", Name: "South Depot"},
			}, nil
		},
		listVehicles: func(groupCode string) ([]*fleet.Vehicle, error) {
			if groupCode != "G1" {
				t.Errorf("expected vehicles fetched for first group, got %s", groupCode)
			}
			return []*fleet.Vehicle{
				{Code: "V1", Speed: 0},
				{Code: "V2", Speed: 45},
			}, nil
		},
	}

	fleetCoordinator := NewFleetCoordinator(fake)

	if err := fleetCoordinator.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := fleetCoordinator.Snapshot()
	if snapshot.Group == nil || snapshot.Group.Code != "G1" {
		t.Errorf("expected first group selected, got %+v", snapshot.Group)
	}
	if len(snapshot.Vehicles) != 2 {
		t.Errorf("expected 2 vehicles, got %d", len(snapshot.Vehicles))
	}
	if snapshot.LastRefreshed == "" {
		t.Error("expected a last refreshed timestamp")
	}
	if snapshot.Loading {
		t.Error("loading must be clear after refresh")
	}
}

func TestFleetCoordinatorRefreshFailureRetainsCollection(t *testing.T) {
	failing := false
	fake := &fakeTelemetry{
		listGroups: func() ([]*fleet.Group, error) {
			return []*fleet.Group{{Code: "G1", Name: "Depot"}}, nil
		},
		listVehicles: func(groupCode string) ([]*fleet.Vehicle, error) {
			if failing {
				return nil, errors.New("provider down")
			}
			return []*fleet.Vehicle{
				{Code: "V1", Speed: 30},
				{Code: "V2", Speed: 0},
				{Code: "V3", Speed: 60},
			}, nil
		},
	}

	fleetCoordinator := NewFleetCoordinator(fake)

	if err := fleetCoordinator.Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstStamp := fleetCoordinator.Snapshot().LastRefreshed

	failing = true
	err := fleetCoordinator.Refresh()
	if err == nil {
		t.Fatal("expected refresh failure to surface")
	}

	snapshot := fleetCoordinator.Snapshot()
	if len(snapshot.Vehicles) != 3 {
		t.Errorf("previous collection must be retained on failure, got %d vehicles", len(snapshot.Vehicles))
	}
	if snapshot.Loading {
		t.Error("loading must clear even on failure")
	}
	if snapshot.LastRefreshed != firstStamp {
		t.Error("timestamp must not advance on a failed refresh")
	}
}

func TestFleetCoordinatorStatsRecomputedFromCollection(t *testing.T) {
	fake := &fakeTelemetry{
		listGroups: func() ([]*fleet.Group, error) {
			return []*fleet.Group{{Code: "G1", Name: "Depot"}}, nil
		},
		listVehicles: func(groupCode string) ([]*fleet.Vehicle, error) {
			return []*fleet.Vehicle{
				{Code: "V1", Speed: 0},
				{Code: "V2", Speed: 45},
				{Code: "V3", Speed: 120},
			}, nil
		},
	}

	fleetCoordinator := NewFleetCoordinator(fake)
	fleetCoordinator.Bootstrap()

	stats := fleetCoordinator.Stats()
	expected := fleet.Stats{MovingCount: 2, IdleCount: 1, AverageSpeed: 83}

	if stats != expected {
		t.Errorf("expected %+v, got %+v", expected, stats)
	}
}

func TestFleetCoordinatorVehiclesReturnsIsolatedCopy(t *testing.T) {
	fake := &fakeTelemetry{
		listGroups: func() ([]*fleet.Group, error) {
			return []*fleet.Group{{Code: "G1", Name: "Depot"}}, nil
		},
		listVehicles: func(groupCode string) ([]*fleet.Vehicle, error) {
			return []*fleet.Vehicle{
				{Code: "V1", Name: "Transit Van", Speed: 30, LastPositionAt: time.Now()},
			}, nil
		},
	}

	fleetCoordinator := NewFleetCoordinator(fake)
	fleetCoordinator.Bootstrap()

	vehicles := fleetCoordinator.Vehicles()
	vehicles[0].Name = "Renamed"

	if fleetCoordinator.Vehicle("V1").Name != "Transit Van" {
		t.Error("mutating a returned vehicle must not affect coordinator state")
	}
}
