package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vpnda/helium-sync/pkg/helium"
)

// AccountSnapshot is one stored observation of an account's state.
// Balances are kept as raw integer bones so no precision is lost.
type AccountSnapshot struct {
	Address             string
	BalanceBones        int64
	DCBalance           uint64
	SecBalanceBones     int64
	Nonce               uint64
	SpeculativeNonce    uint64
	SpeculativeSecNonce uint64
	FetchedAt           time.Time
}

// UpsertAccountSnapshot saves the latest fetched state for an account,
// replacing any previous snapshot for the same address
func (db *DB) UpsertAccountSnapshot(account *helium.Account) error {
	query := `
	INSERT INTO account_snapshots (
		address, balance_bones, dc_balance, sec_balance_bones,
		nonce, speculative_nonce, speculative_sec_nonce, fetched_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(address)
	DO UPDATE SET
		balance_bones = excluded.balance_bones,
		dc_balance = excluded.dc_balance,
		sec_balance_bones = excluded.sec_balance_bones,
		nonce = excluded.nonce,
		speculative_nonce = excluded.speculative_nonce,
		speculative_sec_nonce = excluded.speculative_sec_nonce,
		fetched_at = CURRENT_TIMESTAMP
	`

	_, err := db.Exec(query,
		account.Address,
		account.Balance.Bones(),
		account.DCBalance,
		account.SecBalance.Bones(),
		account.Nonce,
		account.SpeculativeNonce,
		account.SpeculativeSecNonce,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert account snapshot: %w", err)
	}

	return nil
}

// GetAccountSnapshot returns the stored snapshot for an address, or nil
// when the address has never been synced
func (db *DB) GetAccountSnapshot(address string) (*AccountSnapshot, error) {
	query := `
	SELECT
		address, balance_bones, dc_balance, sec_balance_bones,
		nonce, speculative_nonce, speculative_sec_nonce, fetched_at
	FROM account_snapshots
	WHERE address = ?
	LIMIT 1
	`

	var snapshot AccountSnapshot
	err := db.QueryRow(query, address).Scan(
		&snapshot.Address,
		&snapshot.BalanceBones,
		&snapshot.DCBalance,
		&snapshot.SecBalanceBones,
		&snapshot.Nonce,
		&snapshot.SpeculativeNonce,
		&snapshot.SpeculativeSecNonce,
		&snapshot.FetchedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get account snapshot: %w", err)
	}

	return &snapshot, nil
}

// GetAccountSnapshots returns all stored snapshots
func (db *DB) GetAccountSnapshots() ([]AccountSnapshot, error) {
	query := `
	SELECT
		address, balance_bones, dc_balance, sec_balance_bones,
		nonce, speculative_nonce, speculative_sec_nonce, fetched_at
	FROM account_snapshots
	ORDER BY balance_bones DESC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get account snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []AccountSnapshot
	for rows.Next() {
		var snapshot AccountSnapshot
		err := rows.Scan(
			&snapshot.Address,
			&snapshot.BalanceBones,
			&snapshot.DCBalance,
			&snapshot.SecBalanceBones,
			&snapshot.Nonce,
			&snapshot.SpeculativeNonce,
			&snapshot.SpeculativeSecNonce,
			&snapshot.FetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over account snapshots: %w", err)
	}
	return snapshots, nil
}
