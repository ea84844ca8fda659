package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/orchestrator"
)

var dashboard *orchestrator.Orchestrator

// UseDashboard binds the orchestrator the route handlers act on. Called
// once during server setup.
func UseDashboard(o *orchestrator.Orchestrator) {
	dashboard = o
}

func DashboardRouter(router fiber.Router) {
	router.Get("/state", getDashboardState)
	router.Get("/vehicles", listDashboardVehicles)
	router.Get("/map", getMapState)
	router.Get("/charts/:target", getChart)

	router.Post("/select/:code", postSelectVehicle)
	router.Post("/mode/:mode", postToggleMode)
	router.Post("/tab/:tab", postSwitchTab)
	router.Post("/daterange", postDateRange)
	router.Post("/reload", postReload)
	router.Post("/refresh", postRefresh)
}

func getDashboardState(c *fiber.Ctx) error {
	state := dashboard.State()

	stateReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, &state)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce dashboard state",
		})
	}

	return c.JSON(stateReduced)
}

func getMapState(c *fiber.Ctx) error {
	snapshot := dashboard.MapSnapshot()

	snapshotReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, &snapshot)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce map state",
		})
	}

	return c.JSON(snapshotReduced)
}

func postSelectVehicle(c *fiber.Ctx) error {
	vehicleCode := c.Params("code")

	if err := dashboard.SelectVehicle(vehicleCode); err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"selected": vehicleCode,
	})
}

func postToggleMode(c *fiber.Ctx) error {
	mode, valid := fleet.ParseMapMode(c.Params("mode"))
	if !valid {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Mode must be live or history",
		})
	}

	if err := dashboard.ToggleMode(mode); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mode": mode,
	})
}

func postSwitchTab(c *fiber.Ctx) error {
	tab, valid := fleet.ParseDetailTab(c.Params("tab"))
	if !valid {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Tab must be trips or eco",
		})
	}

	if err := dashboard.SwitchTab(tab); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"tab": tab,
	})
}

func postDateRange(c *fiber.Ctx) error {
	var requestBody struct {
		From string
		To   string
	}
	c.BodyParser(&requestBody)

	from, err := time.Parse("2006-01-02", requestBody.From)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter from should be a YYYY-MM-DD date",
		})
	}

	to, err := time.Parse("2006-01-02", requestBody.To)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter to should be a YYYY-MM-DD date",
		})
	}

	if to.Before(from) {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Date range end must not be before its start",
		})
	}

	dashboard.SetDateRange(fleet.DateRange{From: from, To: to})

	return c.JSON(fiber.Map{
		"from": requestBody.From,
		"to":   requestBody.To,
	})
}

func postReload(c *fiber.Ctx) error {
	if err := dashboard.Reload(); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"reloaded": true,
	})
}

func postRefresh(c *fiber.Ctx) error {
	if err := dashboard.RefreshFleet(); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"refreshed": true,
	})
}
