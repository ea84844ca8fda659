package coordinator

import (
	"time"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

// TelemetryProvider is the slice of the telemetry client the coordinators
// consume. Satisfied by telematics.Client.
type TelemetryProvider interface {
	ListGroups() ([]*fleet.Group, error)
	ListVehicles(groupCode string) ([]*fleet.Vehicle, error)
	GetHistory(vehicleCode string, from time.Time, to time.Time) ([]*fleet.PositionBatch, error)
	GetTrips(vehicleCode string, from time.Time, to time.Time) ([]*fleet.Trip, error)
	GetEcoEvents(vehicleCode string, from time.Time, to time.Time) ([]*fleet.EcoEvent, error)
}

// WeatherProvider is satisfied by enrichment.WeatherClient.
type WeatherProvider interface {
	GetWeather(latitude float64, longitude float64) (*fleet.WeatherSnapshot, error)
}

// AddressProvider is satisfied by enrichment.GeocodeClient.
type AddressProvider interface {
	GetAddress(latitude float64, longitude float64) (*fleet.AddressLabel, error)
}
