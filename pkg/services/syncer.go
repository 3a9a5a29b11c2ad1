package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/vpnda/helium-sync/db"
	"github.com/vpnda/helium-sync/pkg/helium"
)

// rewardBatchSize bounds how many reward rows are written per statement
// batch while draining a stream.
const rewardBatchSize = 100

// SnapshotSyncer pulls account state and reward history through the API
// client and persists it in the local snapshot store.
type SnapshotSyncer struct {
	client *helium.Client
	store  db.Store
}

func NewSnapshotSyncer(client *helium.Client, store db.Store) *SnapshotSyncer {
	return &SnapshotSyncer{
		client: client,
		store:  store,
	}
}

// SyncAccount fetches the current state of an account and upserts its
// snapshot, returning the stored row.
func (s *SnapshotSyncer) SyncAccount(ctx context.Context, address string) (*db.AccountSnapshot, error) {
	account, err := s.client.Account(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", address, err)
	}

	if err := s.store.UpsertAccountSnapshot(account); err != nil {
		return nil, err
	}

	log.Info().
		Str("address", account.Address).
		Int64("balance_bones", account.Balance.Bones()).
		Msg("Stored account snapshot")

	return s.store.GetAccountSnapshot(address)
}

// SyncRewards drains the account's reward stream for the window starting
// at since and stores the entries, reporting how many were new.
func (s *SnapshotSyncer) SyncRewards(ctx context.Context, address string, since time.Time) (int, error) {
	rewards, err := s.client.AccountRewardsSince(address, since).Collect(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rewards for %s: %w", address, err)
	}

	inserted := 0
	for _, batch := range lo.Chunk(rewards, rewardBatchSize) {
		n, err := s.store.SaveRewards(batch)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}

	log.Info().
		Str("address", address).
		Int("fetched", len(rewards)).
		Int("new", inserted).
		Msg("Stored reward entries")

	return inserted, nil
}
