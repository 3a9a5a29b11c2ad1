package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vpnda/helium-sync/pkg/helium"
)

const defaultRichListSize = 10

func (r *replState) handleAccount(input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Println("Invalid account command format.")
		fmt.Println("Usage: account <address>")
		return
	}

	account, err := r.client.Account(context.Background(), parts[1])
	if err != nil {
		log.Error().Err(err).Msg("Error fetching account")
		return
	}

	printAccount(account)
}

func printAccount(account *helium.Account) {
	fmt.Printf("Account Details:\n")
	fmt.Printf("	Address: %s\n", account.Address)
	fmt.Printf("	Balance: %s\n", account.Balance)
	fmt.Printf("	DC Balance: %d\n", account.DCBalance)
	fmt.Printf("	Security Balance: %s\n", account.SecBalance)
	fmt.Printf("	Nonce: %d\n", account.Nonce)
	if account.SpeculativeNonce != 0 {
		fmt.Printf("	Speculative Nonce: %d\n", account.SpeculativeNonce)
	}
}

func (r *replState) handleRichest(input string) {
	parts := strings.Fields(input)
	limit := defaultRichListSize
	if len(parts) > 1 {
		parsed, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Println("Invalid rich command format.")
			fmt.Println("Usage: rich [limit]")
			return
		}
		limit = parsed
	}

	accounts, err := r.client.RichestAccounts(context.Background(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching richest accounts")
		return
	}

	fmt.Printf("Found %d accounts:\n\n", len(accounts))
	fmt.Printf("%-4s %-55s %20s %10s\n", "#", "Address", "Balance", "Nonce")
	fmt.Println(strings.Repeat("-", 95))
	for i, account := range accounts {
		fmt.Printf("%-4d %-55s %20s %10d\n",
			i+1,
			account.Address,
			account.Balance,
			account.Nonce)
	}
}

func (r *replState) listSnapshots() {
	snapshots, err := r.db.GetAccountSnapshots()
	if err != nil {
		log.Error().Err(err).Msg("Error fetching snapshots")
		return
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots found")
		return
	}

	fmt.Printf("Found %d snapshots:\n\n", len(snapshots))
	fmt.Printf("%-55s %20s %12s %10s %-20s\n", "Address", "Balance", "DC", "Nonce", "Fetched At")
	fmt.Println(strings.Repeat("-", 125))
	for _, snapshot := range snapshots {
		fmt.Printf("%-55s %20s %12d %10d %-20s\n",
			snapshot.Address,
			helium.NewHNT(snapshot.BalanceBones),
			snapshot.DCBalance,
			snapshot.Nonce,
			snapshot.FetchedAt.Format("2006-01-02 15:04:05"))
	}
}
