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

func (client *Client) ListGroups() ([]*fleet.Group, error) {
	requestURL := fmt.Sprintf("%s/groups", client.BaseURL)
	req, _ := http.NewRequest("GET", requestURL, nil)
	req.Header["X-Fleet-Token"] = []string{client.AuthToken}

	requestStart := time.Now()
	resp, err := client.httpClient.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues("groups").Observe(time.Since(requestStart).Seconds())

	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry provider returned %s", resp.Status)
	}

	jsonBytes, _ := io.ReadAll(resp.Body)

	var groupResponses []groupResponse
	if err := json.Unmarshal(jsonBytes, &groupResponses); err != nil {
		return nil, err
	}

	groups := []*fleet.Group{}
	for _, response := range groupResponses {
		groups = append(groups, &fleet.Group{
			Code: response.Code,
			Name: response.Name,
		})
	}

	return groups, nil
}

type groupResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
