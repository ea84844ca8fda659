package fleet

import "math"

type Stats struct {
	MovingCount  int `groups:"basic"`
	IdleCount    int `groups:"basic"`
	AverageSpeed int `groups:"basic"`
}

// CalculateStats derives fleet statistics from the vehicle collection.
// Average speed covers moving vehicles only, rounded to the nearest
// integer, and is 0 when nothing is moving.
func CalculateStats(vehicles []*Vehicle) Stats {
	var stats Stats
	var movingSpeedTotal float64

	for _, vehicle := range vehicles {
		if vehicle.IsMoving() {
			stats.MovingCount += 1
			movingSpeedTotal += vehicle.Speed
		} else {
			stats.IdleCount += 1
		}
	}

	if stats.MovingCount > 0 {
		stats.AverageSpeed = int(math.Round(movingSpeedTotal / float64(stats.MovingCount)))
	}

	return stats
}
