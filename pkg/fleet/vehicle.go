package fleet

import (
	"strconv"
	"time"
)

// BatteryUnknown is reported by the telemetry provider when a vehicle has
// no battery sensor fitted.
const BatteryUnknown = -1

type Vehicle struct {
	Code  string `groups:"basic"`
	Name  string `groups:"basic"`
	Plate string `groups:"basic"`

	Speed float64 `groups:"basic"`

	LastLatitude   string    `groups:"basic"`
	LastLongitude  string    `groups:"basic"`
	LastPositionAt time.Time `groups:"basic"`

	Odometer          int64 `groups:"detailed"`
	BatteryPercentage int   `groups:"detailed"`
}

func (vehicle *Vehicle) IsMoving() bool {
	return vehicle.Speed > 0
}

// Position parses the last reported coordinate pair. The second return is
// false when the vehicle has never reported or the values are unparsable
// or out of range.
func (vehicle *Vehicle) Position() (float64, float64, bool) {
	if vehicle.LastLatitude == "" || vehicle.LastLongitude == "" {
		return 0, 0, false
	}

	latitude, latitudeError := strconv.ParseFloat(vehicle.LastLatitude, 64)
	longitude, longitudeError := strconv.ParseFloat(vehicle.LastLongitude, 64)

	if latitudeError != nil || longitudeError != nil {
		return 0, 0, false
	}

	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return 0, 0, false
	}

	return latitude, longitude, true
}

func (vehicle *Vehicle) HasPosition() bool {
	_, _, ok := vehicle.Position()

	return ok
}
