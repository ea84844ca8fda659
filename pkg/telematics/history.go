package telematics

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/metrics"
)

func (client *Client) GetHistory(vehicleCode string, from time.Time, to time.Time) ([]*fleet.PositionBatch, error) {
	requestURL := fmt.Sprintf(
		"%s/vehicles/%s/history?from=%s&to=%s",
		client.BaseURL, vehicleCode, from.Format(time.RFC3339), to.Format(time.RFC3339),
	)
	req, _ := http.NewRequest("GET", requestURL, nil)
	req.Header["X-Fleet-Token"] = []string{client.AuthToken}

	requestStart := time.Now()
	resp, err := client.httpClient.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues("history").Observe(time.Since(requestStart).Seconds())

	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry provider returned %s", resp.Status)
	}

	jsonBytes, _ := io.ReadAll(resp.Body)

	var batchResponses []historyBatchResponse
	if err := json.Unmarshal(jsonBytes, &batchResponses); err != nil {
		return nil, err
	}

	batches := []*fleet.PositionBatch{}
	for _, batchResponse := range batchResponses {
		batch := &fleet.PositionBatch{}

		for _, position := range batchResponse.Positions {
			batch.Positions = append(batch.Positions, &fleet.PositionSample{
				Latitude:  position.Latitude,
				Longitude: position.Longitude,

				Speed: position.Speed,

				RecordedAt: position.RecordedAt,
			})
		}

		batches = append(batches, batch)
	}

	return batches, nil
}

type historyBatchResponse struct {
	Positions []positionResponse `json:"positions"`
}

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Speed float64 `json:"speed"`

	RecordedAt time.Time `json:"recordedAt"`
}
