package helium

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Transaction is one entry in an activity history. Transaction bodies
// vary widely by type, so only the shared fields are decoded; the full
// body stays available in Raw for callers that need type-specific fields.
type Transaction struct {
	Type   string `json:"type"`
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Time   int64  `json:"time"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the raw body alongside the shared fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	var shared alias
	if err := json.Unmarshal(data, &shared); err != nil {
		return err
	}
	*t = Transaction(shared)
	t.Raw = append([]byte(nil), data...)
	return nil
}

// Timestamp converts the block time to a time.Time.
func (t *Transaction) Timestamp() time.Time {
	return time.Unix(t.Time, 0).UTC()
}

// Transaction fetches a single transaction by hash. Unknown hashes fail
// with ErrNotFound.
func (c *Client) Transaction(ctx context.Context, hash string) (*Transaction, error) {
	txn, err := fetch[Transaction](ctx, c, fmt.Sprintf("/transactions/%s", hash), nil)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
