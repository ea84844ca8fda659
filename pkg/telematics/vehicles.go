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

func (client *Client) ListVehicles(groupCode string) ([]*fleet.Vehicle, error) {
	requestURL := fmt.Sprintf("%s/groups/%s/vehicles", client.BaseURL, groupCode)
	req, _ := http.NewRequest("GET", requestURL, nil)
	req.Header["X-Fleet-Token"] = []string{client.AuthToken}

	requestStart := time.Now()
	resp, err := client.httpClient.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues("vehicles").Observe(time.Since(requestStart).Seconds())

	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry provider returned %s", resp.Status)
	}

	jsonBytes, _ := io.ReadAll(resp.Body)

	var vehicleResponses []vehicleResponse
	if err := json.Unmarshal(jsonBytes, &vehicleResponses); err != nil {
		return nil, err
	}

	vehicles := []*fleet.Vehicle{}
	for _, response := range vehicleResponses {
		batteryPercentage := fleet.BatteryUnknown
		if response.BatteryPercentage != nil {
			batteryPercentage = *response.BatteryPercentage
		}

		vehicles = append(vehicles, &fleet.Vehicle{
			Code:  response.Code,
			Name:  response.Name,
			Plate: response.Plate,

			Speed: response.Speed,

			LastLatitude:   response.LastLatitude,
			LastLongitude:  response.LastLongitude,
			LastPositionAt: response.LastPositionAt,

			Odometer:          response.Odometer,
			BatteryPercentage: batteryPercentage,
		})
	}

	return vehicles, nil
}

type vehicleResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Plate string `json:"plate"`

	Speed float64 `json:"speed"`

	LastLatitude   string    `json:"lastLatitude"`
	LastLongitude  string    `json:"lastLongitude"`
	LastPositionAt time.Time `json:"lastPositionAt"`

	Odometer          int64 `json:"odometer"`
	BatteryPercentage *int  `json:"batteryPercentage"`
}
