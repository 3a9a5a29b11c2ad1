package helium

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// maxRichListLimit is the server-side cap on /accounts/rich.
const maxRichListLimit = 1000

// Account is a snapshot of a wallet's on-chain state at query time. It is
// never mutated after decoding, only replaced by a freshly fetched value.
type Account struct {
	// Address is the base58 check-encoded public key of the wallet.
	Address string `json:"address"`
	// Balance is the main token balance known to the API.
	Balance HNT `json:"balance"`
	// DCBalance is the data credit balance known to the API.
	DCBalance uint64 `json:"dc_balance"`
	// SecBalance is the security token balance known to the API.
	SecBalance HST `json:"sec_balance"`
	// Nonce is the current transaction ordering counter.
	Nonce uint64 `json:"nonce"`
	// SpeculativeNonce reflects pending, not yet confirmed transactions.
	// Zero when the API omits it.
	SpeculativeNonce uint64 `json:"speculative_nonce,omitempty"`
	// SpeculativeSecNonce is the speculative security token nonce.
	// Zero when the API omits it.
	SpeculativeSecNonce uint64 `json:"speculative_sec_nonce,omitempty"`
}

// Accounts returns all known accounts in server-defined order.
func (c *Client) Accounts() *Stream[Account] {
	return fetchStream[Account](c, "/accounts", nil)
}

// Account fetches a single account by address. Unknown addresses fail
// with ErrNotFound.
func (c *Client) Account(ctx context.Context, address string) (*Account, error) {
	account, err := fetch[Account](ctx, c, fmt.Sprintf("/accounts/%s", address), nil)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountHotspots returns all hotspots owned by the account.
func (c *Client) AccountHotspots(address string) *Stream[Hotspot] {
	return fetchStream[Hotspot](c, fmt.Sprintf("/accounts/%s/hotspots", address), nil)
}

// AccountOUIs returns all OUIs owned by the account.
func (c *Client) AccountOUIs(address string) *Stream[OUI] {
	return fetchStream[OUI](c, fmt.Sprintf("/accounts/%s/ouis", address), nil)
}

// AccountValidators returns all validators owned by the account.
func (c *Client) AccountValidators(address string) *Stream[Validator] {
	return fetchStream[Validator](c, fmt.Sprintf("/accounts/%s/validators", address), nil)
}

// AccountActivity returns the account's transaction history, newest first
// per server convention.
func (c *Client) AccountActivity(address string) *Stream[Transaction] {
	return fetchStream[Transaction](c, fmt.Sprintf("/accounts/%s/activity", address), nil)
}

// AccountRewardsLast returns reward events for the trailing duration
// ending now.
func (c *Client) AccountRewardsLast(address string, duration time.Duration) *Stream[Reward] {
	maxTime := time.Now().UTC()
	return c.AccountRewardsBetween(address, maxTime.Add(-duration), maxTime)
}

// AccountRewardsSince returns reward events from minTime up to now.
func (c *Client) AccountRewardsSince(address string, minTime time.Time) *Stream[Reward] {
	return c.AccountRewardsBetween(address, minTime, time.Now().UTC())
}

// AccountRewardsBetween returns reward events inside the given window.
func (c *Client) AccountRewardsBetween(address string, minTime, maxTime time.Time) *Stream[Reward] {
	return fetchStream[Reward](c, fmt.Sprintf("/accounts/%s/rewards", address), timeWindowParams(minTime, maxTime))
}

// RichestAccounts returns up to limit accounts ordered by descending
// balance in a single call. The limit is defaulted and capped at 1000.
func (c *Client) RichestAccounts(ctx context.Context, limit int) ([]Account, error) {
	if limit <= 0 || limit > maxRichListLimit {
		limit = maxRichListLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	return fetch[[]Account](ctx, c, "/accounts/rich", params)
}
