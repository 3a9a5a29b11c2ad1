package helium

import (
	"context"
	"fmt"
	"time"
)

// HotspotStatus is the gateway's last known liveness as seen by the API.
type HotspotStatus struct {
	Online      string    `json:"online"`
	Height      int64     `json:"height"`
	Timestamp   time.Time `json:"timestamp"`
	ListenAddrs []string  `json:"listen_addrs"`
}

// HotspotGeocode is the reverse-geocoded asserted location.
type HotspotGeocode struct {
	ShortStreet  string `json:"short_street"`
	ShortState   string `json:"short_state"`
	ShortCountry string `json:"short_country"`
	ShortCity    string `json:"short_city"`
	LongStreet   string `json:"long_street"`
	LongState    string `json:"long_state"`
	LongCountry  string `json:"long_country"`
	LongCity     string `json:"long_city"`
	CityID       string `json:"city_id"`
}

// Hotspot is a radio access-point device registered on chain.
type Hotspot struct {
	Address        string         `json:"address"`
	Name           string         `json:"name"`
	Owner          string         `json:"owner"`
	Location       string         `json:"location"`
	Geocode        HotspotGeocode `json:"geocode"`
	Lat            float64        `json:"lat"`
	Lng            float64        `json:"lng"`
	Status         HotspotStatus  `json:"status"`
	BlockAdded     int64          `json:"block_added"`
	Gain           int64          `json:"gain"`
	Elevation      int64          `json:"elevation"`
	Mode           string         `json:"mode"`
	RewardScale    float64        `json:"reward_scale"`
	TimestampAdded time.Time      `json:"timestamp_added"`
}

// Hotspots returns all known hotspots.
func (c *Client) Hotspots() *Stream[Hotspot] {
	return fetchStream[Hotspot](c, "/hotspots", nil)
}

// Hotspot fetches a single hotspot by address. Unknown addresses fail
// with ErrNotFound.
func (c *Client) Hotspot(ctx context.Context, address string) (*Hotspot, error) {
	hotspot, err := fetch[Hotspot](ctx, c, fmt.Sprintf("/hotspots/%s", address), nil)
	if err != nil {
		return nil, err
	}
	return &hotspot, nil
}

// HotspotActivity returns the hotspot's transaction history, newest first.
func (c *Client) HotspotActivity(address string) *Stream[Transaction] {
	return fetchStream[Transaction](c, fmt.Sprintf("/hotspots/%s/activity", address), nil)
}

// HotspotRewardsBetween returns reward events for the hotspot inside the
// given window.
func (c *Client) HotspotRewardsBetween(address string, minTime, maxTime time.Time) *Stream[Reward] {
	return fetchStream[Reward](c, fmt.Sprintf("/hotspots/%s/rewards", address), timeWindowParams(minTime, maxTime))
}
