package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/vpnda/helium-sync/pkg/helium"
)

// Scratch binary for poking the live API by hand.
func main() {
	client := lo.Must(helium.NewClient(helium.Config{}))
	accounts := lo.Must(client.RichestAccounts(context.Background(), 10))

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
