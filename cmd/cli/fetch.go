package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/vpnda/helium-sync/pkg/helium"
	"github.com/vpnda/helium-sync/pkg/utils"
)

const defaultRewardWindowDays = 7

func (r *replState) handleHotspots(input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Println("Invalid hotspots command format.")
		fmt.Println("Usage: hotspots <address>")
		return
	}

	hotspots, err := r.client.AccountHotspots(parts[1]).Collect(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching hotspots")
		return
	}

	if len(hotspots) == 0 {
		fmt.Println("No hotspots found")
		return
	}

	fmt.Printf("Found %d hotspots:\n\n", len(hotspots))
	fmt.Printf("%-30s %-20s %-8s %-12s %8s\n", "Name", "Location", "Online", "Reward Scale", "Gain")
	fmt.Println(strings.Repeat("-", 85))
	for _, hotspot := range hotspots {
		location := hotspot.Geocode.ShortCity
		if hotspot.Geocode.ShortCountry != "" {
			location = location + ", " + hotspot.Geocode.ShortCountry
		}
		name := utils.PrettyHotspotName(hotspot.Name)
		fmt.Printf("%-30s %-20s %-8s %-12.3f %8d\n",
			name[:min(30, len(name))],
			location[:min(20, len(location))],
			hotspot.Status.Online,
			hotspot.RewardScale,
			hotspot.Gain)
	}
}

func (r *replState) handleRewards(input string) {
	address, days, ok := parseAddressAndDays(input, "rewards")
	if !ok {
		return
	}

	window := time.Duration(days) * 24 * time.Hour
	rewards, err := r.client.AccountRewardsLast(address, window).Collect(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching rewards")
		return
	}

	total := lo.SumBy(rewards, func(reward helium.Reward) int64 {
		return reward.Amount.Bones()
	})

	fmt.Printf("Found %d reward events over the last %d days\n", len(rewards), days)
	fmt.Printf("Total: %s\n", helium.NewHNT(total))

	byGateway := lo.GroupBy(rewards, func(reward helium.Reward) string {
		return reward.Gateway
	})
	for gateway, entries := range byGateway {
		gatewayTotal := lo.SumBy(entries, func(reward helium.Reward) int64 {
			return reward.Amount.Bones()
		})
		fmt.Printf("	%s: %s (%d events)\n", gateway, helium.NewHNT(gatewayTotal), len(entries))
	}
}

func (r *replState) handleSync(input string) {
	address, days, ok := parseAddressAndDays(input, "sync")
	if !ok {
		return
	}

	ctx := context.Background()
	snapshot, err := r.syncer.SyncAccount(ctx, address)
	if err != nil {
		log.Error().Err(err).Msg("Error syncing account")
		return
	}
	fmt.Printf("Stored snapshot for %s (balance %s)\n",
		snapshot.Address, helium.NewHNT(snapshot.BalanceBones))

	since := time.Now().UTC().AddDate(0, 0, -days)
	inserted, err := r.syncer.SyncRewards(ctx, address, since)
	if err != nil {
		log.Error().Err(err).Msg("Error syncing rewards")
		return
	}
	fmt.Printf("Stored %d new reward entries\n", inserted)
}

func parseAddressAndDays(input, command string) (string, int, bool) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Printf("Invalid %s command format.\n", command)
		fmt.Printf("Usage: %s <address> [days]\n", command)
		return "", 0, false
	}

	days := defaultRewardWindowDays
	if len(parts) > 2 {
		parsed, err := strconv.Atoi(parts[2])
		if err != nil || parsed <= 0 {
			fmt.Printf("Invalid day count %q, expected a positive number\n", parts[2])
			return "", 0, false
		}
		days = parsed
	}

	return parts[1], days, true
}
