package telematics

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
	"github.com/fleetdeck/fleetdeck/pkg/metrics"
)

func (client *Client) GetEcoEvents(vehicleCode string, from time.Time, to time.Time) ([]*fleet.EcoEvent, error) {
	requestURL := fmt.Sprintf(
		"%s/vehicles/%s/ecoevents?from=%s&to=%s",
		client.BaseURL, vehicleCode, from.Format(time.RFC3339), to.Format(time.RFC3339),
	)
	req, _ := http.NewRequest("GET", requestURL, nil)
	req.Header["X-Fleet-Token"] = []string{client.AuthToken}

	requestStart := time.Now()
	resp, err := client.httpClient.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues("ecoevents").Observe(time.Since(requestStart).Seconds())

	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry provider returned %s", resp.Status)
	}

	jsonBytes, _ := io.ReadAll(resp.Body)

	// The provider occasionally returns an object instead of an array for
	// vehicles with no recorded events. Treat anything that is not an
	// array as an empty result rather than a failure.
	var eventResponses []ecoEventResponse
	if err := json.Unmarshal(jsonBytes, &eventResponses); err != nil {
		if _, isTypeError := err.(*json.UnmarshalTypeError); isTypeError {
			log.Debug().Str("vehicle", vehicleCode).Msg("Non-array eco event response, treating as empty")
			return []*fleet.EcoEvent{}, nil
		}

		return nil, err
	}

	events := []*fleet.EcoEvent{}
	for _, response := range eventResponses {
		events = append(events, &fleet.EcoEvent{
			VehicleCode: vehicleCode,

			EventType: response.EventType,
			Severity:  response.Severity,

			Speed: response.Speed,

			RecordedAt: response.RecordedAt,
		})
	}

	return events, nil
}

type ecoEventResponse struct {
	EventType int `json:"eventType"`
	Severity  int `json:"severity"`

	Speed int32 `json:"speed"`

	RecordedAt time.Time `json:"recordedAt"`
}
