package fleet

import "time"

type Trip struct {
	VehicleCode string `groups:"basic"`

	StartLatitude  float64 `groups:"basic"`
	StartLongitude float64 `groups:"basic"`
	EndLatitude    float64 `groups:"basic"`
	EndLongitude   float64 `groups:"basic"`

	StartAddress string `groups:"basic"`
	EndAddress   string `groups:"basic"`

	DistanceMetres int64   `groups:"basic"`
	AverageSpeed   float64 `groups:"basic"`
	MaximumSpeed   float64 `groups:"basic"`

	DurationLabel string    `groups:"basic"`
	StartedAt     time.Time `groups:"basic"`
}

func (trip *Trip) DistanceKilometres() float64 {
	return float64(trip.DistanceMetres) / 1000
}
