package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	gocachestore "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"

	"github.com/fleetdeck/fleetdeck/pkg/fleet"
)

// GeocodeClient wraps the reverse geocoding provider. Lookups are cached
// in memory because vehicles mostly sit still between selections.
type GeocodeClient struct {
	BaseURL string
	Locale  string

	httpClient   *http.Client
	addressCache *cache.Cache[string]
}

func NewGeocodeClient(baseURL string, locale string, timeout time.Duration) *GeocodeClient {
	gocacheStore := gocachestore.NewGoCache(gocache.New(30*time.Minute, 10*time.Minute))

	return &GeocodeClient{
		BaseURL: baseURL,
		Locale:  locale,

		httpClient:   &http.Client{Timeout: timeout},
		addressCache: cache.New[string](gocacheStore),
	}
}

func (client *GeocodeClient) GetAddress(latitude float64, longitude float64) (*fleet.AddressLabel, error) {
	cacheKey := fmt.Sprintf("geocode:%.4f:%.4f", latitude, longitude)

	cachedLabel, err := client.addressCache.Get(context.Background(), cacheKey)
	if err == nil {
		return &fleet.AddressLabel{Label: cachedLabel}, nil
	}

	requestURL := fmt.Sprintf("%s?lat=%f&lon=%f&format=jsonv2", client.BaseURL, latitude, longitude)
	req, _ := http.NewRequest("GET", requestURL, nil)
	req.Header["accept-language"] = []string{client.Locale}

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding provider returned %s", resp.Status)
	}

	jsonBytes, _ := io.ReadAll(resp.Body)

	var geocodeResponse geocodeResponse
	if err := json.Unmarshal(jsonBytes, &geocodeResponse); err != nil {
		return nil, err
	}

	label := fleet.ComposeAddressLabel(
		geocodeResponse.Address.Road,
		geocodeResponse.Address.Settlement(),
		geocodeResponse.DisplayName,
	)

	client.addressCache.Set(context.Background(), cacheKey, label.Label)

	return &label, nil
}

type geocodeResponse struct {
	DisplayName string         `json:"display_name"`
	Address     geocodeAddress `json:"address"`
}

type geocodeAddress struct {
	Road    string `json:"road"`
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
}

// Settlement picks the most specific place name the provider returned.
func (address *geocodeAddress) Settlement() string {
	if address.City != "" {
		return address.City
	}
	if address.Town != "" {
		return address.Town
	}

	return address.Village
}

