package fleet

import (
	"math"
	"strconv"
	"time"
)

// EcoEventSpeedUnavailable is the sentinel the telemetry provider reports
// when the speed reading for an event is missing.
const EcoEventSpeedUnavailable = math.MinInt32

type EcoEvent struct {
	VehicleCode string `groups:"basic"`

	EventType int `groups:"basic"`
	Severity  int `groups:"basic"`

	Speed int32 `groups:"basic"`

	RecordedAt time.Time `groups:"basic"`
}

var ecoEventTypeLabels = map[int]string{
	0: "Unknown",
	1: "Harsh Acceleration",
	2: "Harsh Braking",
	3: "Harsh Cornering",
	4: "Overspeeding",
	5: "Excessive Idling",
	6: "Rapid Lane Change",
	7: "Over Revving",
	8: "Fatigue Warning",
	9: "Seatbelt Warning",
}

var ecoEventSeverityLabels = map[int]string{
	0: "Info",
	1: "Minor",
	2: "Moderate",
	3: "Severe",
}

// EcoSeverityScale lists the severity labels in ascending order.
func EcoSeverityScale() []string {
	return []string{
		ecoEventSeverityLabels[0],
		ecoEventSeverityLabels[1],
		ecoEventSeverityLabels[2],
		ecoEventSeverityLabels[3],
	}
}

func (event *EcoEvent) TypeLabel() string {
	label, exists := ecoEventTypeLabels[event.EventType]
	if !exists {
		return ecoEventTypeLabels[0]
	}

	return label
}

func (event *EcoEvent) SeverityLabel() string {
	label, exists := ecoEventSeverityLabels[event.Severity]
	if !exists {
		return ecoEventSeverityLabels[0]
	}

	return label
}

func (event *EcoEvent) SpeedKnown() bool {
	return event.Speed != EcoEventSpeedUnavailable
}

// SpeedLabel renders the speed reading for display, with "N/A" standing in
// for the unavailable sentinel.
func (event *EcoEvent) SpeedLabel() string {
	if !event.SpeedKnown() {
		return "N/A"
	}

	return strconv.Itoa(int(event.Speed))
}
