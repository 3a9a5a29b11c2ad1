package db

import (
	"os"
	"testing"
	"time"

	"github.com/vpnda/helium-sync/pkg/helium"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	tempFile, err := os.CreateTemp("", "test-db-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tempFile.Close()
	t.Cleanup(func() { os.Remove(tempFile.Name()) })

	db, err := New(tempFile.Name())
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Initialize(); err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	return db
}

func TestNew(t *testing.T) {
	db := newTestDB(t)

	// Verify the database connection works
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}
}

func TestInitialize(t *testing.T) {
	db := newTestDB(t)

	for _, table := range []string{"account_snapshots", "reward_entries"} {
		var tableName string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&tableName)
		if err != nil {
			t.Fatalf("Failed to query for %s table: %v", table, err)
		}
		if tableName != table {
			t.Fatalf("Expected table name '%s', got '%s'", table, tableName)
		}
	}
}

func TestUpsertAndGetAccountSnapshot(t *testing.T) {
	db := newTestDB(t)

	account := &helium.Account{
		Address:          "13WRNw4fmssJBvMqMnREwe1eCvUVXfnWXSXGcWXyVvAnQUF3D9R",
		Balance:          helium.NewHNT(500000000),
		DCBalance:        20000,
		SecBalance:       helium.NewHST(100),
		Nonce:            3,
		SpeculativeNonce: 4,
	}

	if err := db.UpsertAccountSnapshot(account); err != nil {
		t.Fatalf("Failed to upsert account snapshot: %v", err)
	}

	snapshot, err := db.GetAccountSnapshot(account.Address)
	if err != nil {
		t.Fatalf("Failed to get account snapshot: %v", err)
	}
	if snapshot == nil {
		t.Fatal("Expected a snapshot, got nil")
	}
	if snapshot.BalanceBones != 500000000 {
		t.Errorf("Expected balance 500000000 bones, got %d", snapshot.BalanceBones)
	}
	if snapshot.SpeculativeNonce != 4 {
		t.Errorf("Expected speculative nonce 4, got %d", snapshot.SpeculativeNonce)
	}

	// Upsert again with a fresh balance, the row must be replaced
	account.Balance = helium.NewHNT(600000000)
	if err := db.UpsertAccountSnapshot(account); err != nil {
		t.Fatalf("Failed to upsert account snapshot: %v", err)
	}

	snapshot, err = db.GetAccountSnapshot(account.Address)
	if err != nil {
		t.Fatalf("Failed to get account snapshot: %v", err)
	}
	if snapshot.BalanceBones != 600000000 {
		t.Errorf("Expected balance 600000000 bones, got %d", snapshot.BalanceBones)
	}

	snapshots, err := db.GetAccountSnapshots()
	if err != nil {
		t.Fatalf("Failed to get account snapshots: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("Expected 1 snapshot, got %d", len(snapshots))
	}
}

func TestGetAccountSnapshotMissing(t *testing.T) {
	db := newTestDB(t)

	snapshot, err := db.GetAccountSnapshot("unknown-address")
	if err != nil {
		t.Fatalf("Failed to get account snapshot: %v", err)
	}
	if snapshot != nil {
		t.Fatalf("Expected nil snapshot for unknown address, got %+v", snapshot)
	}
}

func TestSaveRewardsDeduplicates(t *testing.T) {
	db := newTestDB(t)

	rewards := []helium.Reward{
		{
			Account:   "account-1",
			Gateway:   "gateway-1",
			Amount:    helium.NewHNT(100),
			Block:     1000,
			Hash:      "hash-1",
			Timestamp: time.Now().UTC(),
		},
		{
			Account:   "account-1",
			Gateway:   "gateway-2",
			Amount:    helium.NewHNT(250),
			Block:     1001,
			Hash:      "hash-2",
			Timestamp: time.Now().UTC(),
		},
	}

	inserted, err := db.SaveRewards(rewards)
	if err != nil {
		t.Fatalf("Failed to save rewards: %v", err)
	}
	if inserted != 2 {
		t.Errorf("Expected 2 inserted rewards, got %d", inserted)
	}

	// Saving the same batch again inserts nothing
	inserted, err = db.SaveRewards(rewards)
	if err != nil {
		t.Fatalf("Failed to save rewards: %v", err)
	}
	if inserted != 0 {
		t.Errorf("Expected 0 inserted rewards on resave, got %d", inserted)
	}

	total, err := db.GetRewardTotal("account-1")
	if err != nil {
		t.Fatalf("Failed to total rewards: %v", err)
	}
	if total != 350 {
		t.Errorf("Expected reward total 350 bones, got %d", total)
	}
}
