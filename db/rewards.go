package db

import (
	"fmt"

	"github.com/vpnda/helium-sync/pkg/helium"
)

func (db *DB) createRewardEntriesTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS reward_entries (
		hash TEXT,
		account TEXT,
		gateway TEXT,
		amount_bones INTEGER,
		block INTEGER,
		timestamp TIMESTAMP,
		PRIMARY KEY (hash, gateway)
	)
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create reward_entries table: %w", err)
	}
	return nil
}

// SaveRewards stores reward events, skipping ones already present.
// It returns how many entries were newly inserted
func (db *DB) SaveRewards(rewards []helium.Reward) (int, error) {
	query := `
	INSERT INTO reward_entries (hash, account, gateway, amount_bones, block, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(hash, gateway) DO NOTHING
	`

	inserted := 0
	for _, reward := range rewards {
		result, err := db.Exec(query,
			reward.Hash,
			reward.Account,
			reward.Gateway,
			reward.Amount.Bones(),
			reward.Block,
			reward.Timestamp,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to save reward %s: %w", reward.Hash, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("failed to count inserted rewards: %w", err)
		}
		inserted += int(affected)
	}

	return inserted, nil
}

// GetRewardTotal sums the stored reward amounts for an account, in bones
func (db *DB) GetRewardTotal(account string) (int64, error) {
	query := `
	SELECT COALESCE(SUM(amount_bones), 0) FROM reward_entries WHERE account = ?
	`

	var total int64
	if err := db.QueryRow(query, account).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to total rewards: %w", err)
	}
	return total, nil
}
