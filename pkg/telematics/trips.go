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

func (client *Client) GetTrips(vehicleCode string, from time.Time, to time.Time) ([]*fleet.Trip, error) {
	requestURL := fmt.Sprintf(
		"%s/vehicles/%s/trips?from=%s&to=%s",
		client.BaseURL, vehicleCode, from.Format(time.RFC3339), to.Format(time.RFC3339),
	)
	req, _ := http.NewRequest("GET", requestURL, nil)
	req.Header["X-Fleet-Token"] = []string{client.AuthToken}

	requestStart := time.Now()
	resp, err := client.httpClient.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues("trips").Observe(time.Since(requestStart).Seconds())

	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry provider returned %s", resp.Status)
	}

	jsonBytes, _ := io.ReadAll(resp.Body)

	var tripResponses []tripResponse
	if err := json.Unmarshal(jsonBytes, &tripResponses); err != nil {
		return nil, err
	}

	trips := []*fleet.Trip{}
	for _, response := range tripResponses {
		trips = append(trips, &fleet.Trip{
			VehicleCode: vehicleCode,

			StartLatitude:  response.StartLatitude,
			StartLongitude: response.StartLongitude,
			EndLatitude:    response.EndLatitude,
			EndLongitude:   response.EndLongitude,

			StartAddress: response.StartAddress,
			EndAddress:   response.EndAddress,

			DistanceMetres: response.DistanceMetres,
			AverageSpeed:   response.AverageSpeed,
			MaximumSpeed:   response.MaximumSpeed,

			DurationLabel: response.DurationLabel,
			StartedAt:     response.StartedAt,
		})
	}

	return trips, nil
}

type tripResponse struct {
	StartLatitude  float64 `json:"startLatitude"`
	StartLongitude float64 `json:"startLongitude"`
	EndLatitude    float64 `json:"endLatitude"`
	EndLongitude   float64 `json:"endLongitude"`

	StartAddress string `json:"startAddress"`
	EndAddress   string `json:"endAddress"`

	DistanceMetres int64   `json:"distanceMetres"`
	AverageSpeed   float64 `json:"averageSpeed"`
	MaximumSpeed   float64 `json:"maximumSpeed"`

	DurationLabel string    `json:"durationLabel"`
	StartedAt     time.Time `json:"startedAt"`
}
