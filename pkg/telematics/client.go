package telematics

import (
	"net/http"
	"time"
)

// Client wraps the fleet telemetry provider. Every request carries the
// account credential in the X-Fleet-Token header.
type Client struct {
	BaseURL   string
	AuthToken string

	httpClient *http.Client
}

func NewClient(baseURL string, authToken string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   baseURL,
		AuthToken: authToken,

		httpClient: &http.Client{Timeout: timeout},
	}
}
