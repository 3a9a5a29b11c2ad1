package helium

import (
	"context"
	"fmt"
)

// OUI is an organizationally unique identifier, a network routing
// registration owned by an account.
type OUI struct {
	OUI       int64    `json:"oui"`
	Owner     string   `json:"owner"`
	Payer     string   `json:"payer"`
	Nonce     uint64   `json:"nonce"`
	Block     int64    `json:"block"`
	Addresses []string `json:"addresses"`
	Subnets   []string `json:"subnets"`
}

// OUIs returns all registered OUIs.
func (c *Client) OUIs() *Stream[OUI] {
	return fetchStream[OUI](c, "/ouis", nil)
}

// OUI fetches a single OUI by number. Unknown numbers fail with
// ErrNotFound.
func (c *Client) OUI(ctx context.Context, number int64) (*OUI, error) {
	oui, err := fetch[OUI](ctx, c, fmt.Sprintf("/ouis/%d", number), nil)
	if err != nil {
		return nil, err
	}
	return &oui, nil
}

// LastOUI fetches the most recently registered OUI.
func (c *Client) LastOUI(ctx context.Context) (*OUI, error) {
	oui, err := fetch[OUI](ctx, c, "/ouis/last", nil)
	if err != nil {
		return nil, err
	}
	return &oui, nil
}
