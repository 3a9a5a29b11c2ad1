package helium

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedAccountsHandler serves /accounts as pages of pageSize accounts,
// total accounts overall, linked by opaque cursors.
func pagedAccountsHandler(t *testing.T, total, pageSize int, requests *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			*requests++
		}

		start := 0
		if cursor := r.URL.Query().Get("cursor"); cursor != "" {
			if _, err := fmt.Sscanf(cursor, "page-%d", &start); err != nil {
				t.Errorf("unexpected cursor %q", cursor)
			}
		}

		end := start + pageSize
		if end > total {
			end = total
		}

		var items []string
		for i := start; i < end; i++ {
			items = append(items, fmt.Sprintf(`{"address": "addr-%d", "balance": 0, "dc_balance": 0, "sec_balance": 0, "nonce": 0}`, i))
		}

		next := ""
		if end < total {
			next = fmt.Sprintf(`, "cursor": "page-%d"`, end)
		}
		fmt.Fprintf(w, `{"data": [%s]%s}`, strings.Join(items, ","), next)
	})
}

func TestStreamWalksAllPages(t *testing.T) {
	requests := 0
	client := newTestClient(t, pagedAccountsHandler(t, 25, 10, &requests))

	accounts, err := client.Accounts().Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 25)
	assert.Equal(t, 3, requests)

	// No duplicates across page boundaries
	seen := make(map[string]bool)
	for _, account := range accounts {
		assert.False(t, seen[account.Address], "duplicate address %s", account.Address)
		seen[account.Address] = true
	}
}

func TestStreamTake(t *testing.T) {
	for _, n := range []int{1, 9, 10, 11, 25} {
		t.Run(fmt.Sprintf("take %d", n), func(t *testing.T) {
			client := newTestClient(t, pagedAccountsHandler(t, 25, 10, nil))

			accounts, err := client.Accounts().Take(context.Background(), n)
			require.NoError(t, err)
			require.Len(t, accounts, n)

			seen := make(map[string]bool)
			for _, account := range accounts {
				assert.False(t, seen[account.Address], "duplicate address %s", account.Address)
				seen[account.Address] = true
			}
		})
	}
}

func TestStreamTakePastEnd(t *testing.T) {
	client := newTestClient(t, pagedAccountsHandler(t, 5, 10, nil))

	accounts, err := client.Accounts().Take(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, accounts, 5)
}

func TestStreamIsLazy(t *testing.T) {
	requests := 0
	client := newTestClient(t, pagedAccountsHandler(t, 25, 10, &requests))

	stream := client.Accounts()
	assert.Equal(t, 0, requests, "creating a stream must not issue a request")

	require.True(t, stream.Next(context.Background()))
	assert.Equal(t, 1, requests)

	// Draining the first page buffer issues no further requests
	for i := 0; i < 9; i++ {
		require.True(t, stream.Next(context.Background()))
	}
	assert.Equal(t, 1, requests)

	require.True(t, stream.Next(context.Background()))
	assert.Equal(t, 2, requests)
}

func TestStreamErrorIsTerminal(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("cursor") == "" {
			fmt.Fprint(w, `{"data": [
				{"address": "addr-0", "balance": 0, "dc_balance": 0, "sec_balance": 0, "nonce": 0},
				{"address": "addr-1", "balance": 0, "dc_balance": 0, "sec_balance": 0, "nonce": 0}
			], "cursor": "page-2"}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "boom"}`)
	}))

	stream := client.Accounts()
	ctx := context.Background()

	// First page yields normally
	var yielded []Account
	for stream.Next(ctx) {
		yielded = append(yielded, stream.Item())
	}

	assert.Len(t, yielded, 2, "items before the failure must not be lost")

	err := stream.Err()
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "boom", apiErr.Message)

	// The failed stream stays failed
	assert.False(t, stream.Next(ctx))
	assert.Equal(t, 2, requests)
}

func TestStreamEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": []}`)
	}))

	stream := client.Accounts()
	assert.False(t, stream.Next(context.Background()))
	assert.NoError(t, stream.Err())
}

func TestStreamContextCancellation(t *testing.T) {
	client := newTestClient(t, pagedAccountsHandler(t, 25, 10, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := client.Accounts()
	assert.False(t, stream.Next(ctx))
	require.Error(t, stream.Err())
	assert.True(t, errors.Is(stream.Err(), context.Canceled))
}
