package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"golang.org/x/exp/slices"

	"github.com/fleetdeck/fleetdeck/pkg/charts"
)

func getChart(c *fiber.Ctx) error {
	target := c.Params("target")

	if !slices.Contains([]string{charts.TargetSpeed, charts.TargetEco}, target) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find render target matching identifier",
		})
	}

	chart := dashboard.Chart(target)
	if chart == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "No chart is bound to the render target",
		})
	}

	chartReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, chart)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce chart",
		})
	}

	return c.JSON(chartReduced)
}
