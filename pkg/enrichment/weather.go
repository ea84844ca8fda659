package enrichment

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

// WeatherClient wraps the forecast provider. No key is required.
type WeatherClient struct {
	BaseURL string

	httpClient *http.Client
}

func NewWeatherClient(baseURL string, timeout time.Duration) *WeatherClient {
	return &WeatherClient{
		BaseURL: baseURL,

		httpClient: &http.Client{Timeout: timeout},
	}
}

func (client *WeatherClient) GetWeather(latitude float64, longitude float64) (*fleet.WeatherSnapshot, error) {
	requestURL := fmt.Sprintf(
		"%s?latitude=%f&longitude=%f&current=temperature_2m,wind_speed_10m,weather_code",
		client.BaseURL, latitude, longitude,
	)
	req, _ := http.NewRequest("GET", requestURL, nil)

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned %s", resp.Status)
	}

	jsonBytes, _ := io.ReadAll(resp.Body)

	var weatherResponse weatherResponse
	if err := json.Unmarshal(jsonBytes, &weatherResponse); err != nil {
		return nil, err
	}

	snapshot := fleet.NewWeatherSnapshot(
		weatherResponse.Current.Temperature,
		weatherResponse.Current.WindSpeed,
		weatherResponse.Current.WeatherCode,
	)

	return &snapshot, nil
}

type weatherResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}
