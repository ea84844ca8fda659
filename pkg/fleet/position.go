package fleet

import "time"

// PositionBatch is one history query result from the telemetry provider.
// Samples are ordered by time ascending within a batch.
type PositionBatch struct {
	Positions []*PositionSample `groups:"basic"`
}

type PositionSample struct {
	Latitude  float64 `groups:"basic"`
	Longitude float64 `groups:"basic"`

	Speed float64 `groups:"basic"`

	RecordedAt time.Time `groups:"basic"`
}

func (sample *PositionSample) Valid() bool {
	if sample.Latitude < -90 || sample.Latitude > 90 {
		return false
	}
	if sample.Longitude < -180 || sample.Longitude > 180 {
		return false
	}

	return true
}
