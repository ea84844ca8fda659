package routes

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

// vehicleFilterEnv is the expression environment a filter query runs
// against, one evaluation per vehicle.
type vehicleFilterEnv struct {
	Speed             float64
	BatteryPercentage int
	Moving            bool
}

func filterVehicles(vehicles []*fleet.Vehicle, filterExpression string) ([]*fleet.Vehicle, error) {
	program, err := expr.Compile(filterExpression, expr.Env(vehicleFilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	filtered := []*fleet.Vehicle{}
	for _, vehicle := range vehicles {
		keep, err := expr.Run(program, vehicleFilterEnv{
			Speed:             vehicle.Speed,
			BatteryPercentage: vehicle.BatteryPercentage,
			Moving:            vehicle.IsMoving(),
		})
		if err != nil {
			return nil, fmt.Errorf("filter expression failed: %w", err)
		}

		if keep.(bool) {
			filtered = append(filtered, vehicle)
		}
	}

	return filtered, nil
}

func listDashboardVehicles(c *fiber.Ctx) error {
	vehicles := dashboard.Vehicles()

	if filterExpression := c.Query("filter"); filterExpression != "" {
		var err error
		vehicles, err = filterVehicles(vehicles, filterExpression)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	vehiclesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, vehicles)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce vehicles",
		})
	}

	return c.JSON(vehiclesReduced)
}
