package fleet

type DetailTab string

const (
	DetailTabTrips DetailTab = "trips"
	DetailTabEco             = "eco"
)

func ParseDetailTab(value string) (DetailTab, bool) {
	switch value {
	case string(DetailTabTrips):
		return DetailTabTrips, true
	case string(DetailTabEco):
		return DetailTabEco, true
	}

	return "", false
}

type MapMode string

const (
	MapModeLive    MapMode = "live"
	MapModeHistory         = "history"
)

func ParseMapMode(value string) (MapMode, bool) {
	switch value {
	case string(MapModeLive):
		return MapModeLive, true
	case string(MapModeHistory):
		return MapModeHistory, true
	}

	return "", false
}

// Selection is the single source of truth for what the dashboard is
// showing. Generation increases on every vehicle change so that async
// results dispatched for an older selection can be recognised and dropped.
type Selection struct {
	VehicleCode string    `groups:"basic"`
	Tab         DetailTab `groups:"basic"`
	Mode        MapMode   `groups:"basic"`

	Generation uint64 `groups:"internal"`
}

func (selection *Selection) HasVehicle() bool {
	return selection.VehicleCode != ""
}
