package helium

import (
	"context"
	"fmt"
	"time"
)

// ValidatorStatus is the validator's last known liveness.
type ValidatorStatus struct {
	Online    string    `json:"online"`
	Height    int64     `json:"height"`
	Timestamp time.Time `json:"timestamp"`
}

// Validator is a node participating in consensus, ownership tracked per
// account.
type Validator struct {
	Address          string          `json:"address"`
	Name             string          `json:"name"`
	Owner            string          `json:"owner"`
	Stake            HNT             `json:"stake"`
	StakeStatus      string          `json:"stake_status"`
	Status           ValidatorStatus `json:"status"`
	LastHeartbeat    int64           `json:"last_heartbeat"`
	VersionHeartbeat int64           `json:"version_heartbeat"`
	Penalty          float64         `json:"penalty"`
	BlockAdded       int64           `json:"block_added"`
}

// Validators returns all known validators.
func (c *Client) Validators() *Stream[Validator] {
	return fetchStream[Validator](c, "/validators", nil)
}

// Validator fetches a single validator by address. Unknown addresses fail
// with ErrNotFound.
func (c *Client) Validator(ctx context.Context, address string) (*Validator, error) {
	validator, err := fetch[Validator](ctx, c, fmt.Sprintf("/validators/%s", address), nil)
	if err != nil {
		return nil, err
	}
	return &validator, nil
}

// ValidatorRewardsBetween returns reward events for the validator inside
// the given window.
func (c *Client) ValidatorRewardsBetween(address string, minTime, maxTime time.Time) *Stream[Reward] {
	return fetchStream[Reward](c, fmt.Sprintf("/validators/%s/rewards", address), timeWindowParams(minTime, maxTime))
}
