package helium

import (
	"net/url"
	"time"
)

// Reward is a single mining or staking reward event.
type Reward struct {
	// Account is the address the reward was paid to.
	Account string `json:"account"`
	// Gateway is the hotspot or validator that earned the reward.
	Gateway string `json:"gateway"`
	// Amount is the rewarded token amount.
	Amount HNT `json:"amount"`
	// Block is the height the reward was paid at.
	Block int64 `json:"block"`
	// Hash is the rewards transaction hash.
	Hash string `json:"hash"`
	// Timestamp is when the reward was paid.
	Timestamp time.Time `json:"timestamp"`
}

// timeWindowParams formats a reward query window. The API expects
// RFC3339 timestamps.
func timeWindowParams(minTime, maxTime time.Time) url.Values {
	params := url.Values{}
	params.Set("min_time", minTime.UTC().Format(time.RFC3339))
	params.Set("max_time", maxTime.UTC().Format(time.RFC3339))
	return params
}
