package db

import (
	"time"

	"github.com/vpnda/helium-sync/pkg/helium"
)

// MockStore is an in-memory Store implementation for testing
type MockStore struct {
	// Mock data storage
	Snapshots map[string]*AccountSnapshot
	Rewards   map[string]helium.Reward

	// Error values to return
	UpsertAccountSnapshotErr error
	GetAccountSnapshotErr    error
	GetAccountSnapshotsErr   error
	SaveRewardsErr           error
	GetRewardTotalErr        error
}

// NewMockStore creates a new mock store
func NewMockStore() *MockStore {
	return &MockStore{
		Snapshots: make(map[string]*AccountSnapshot),
		Rewards:   make(map[string]helium.Reward),
	}
}

// Initialize is a no-op for the mock store
func (m *MockStore) Initialize() error {
	return nil
}

// Close is a no-op for the mock store
func (m *MockStore) Close() error {
	return nil
}

// UpsertAccountSnapshot stores a snapshot in the mock store
func (m *MockStore) UpsertAccountSnapshot(account *helium.Account) error {
	if m.UpsertAccountSnapshotErr != nil {
		return m.UpsertAccountSnapshotErr
	}

	m.Snapshots[account.Address] = &AccountSnapshot{
		Address:             account.Address,
		BalanceBones:        account.Balance.Bones(),
		DCBalance:           account.DCBalance,
		SecBalanceBones:     account.SecBalance.Bones(),
		Nonce:               account.Nonce,
		SpeculativeNonce:    account.SpeculativeNonce,
		SpeculativeSecNonce: account.SpeculativeSecNonce,
		FetchedAt:           time.Now(),
	}
	return nil
}

// GetAccountSnapshot returns a stored snapshot by address
func (m *MockStore) GetAccountSnapshot(address string) (*AccountSnapshot, error) {
	if m.GetAccountSnapshotErr != nil {
		return nil, m.GetAccountSnapshotErr
	}

	snapshot, ok := m.Snapshots[address]
	if !ok {
		return nil, nil
	}
	return snapshot, nil
}

// GetAccountSnapshots returns all stored snapshots
func (m *MockStore) GetAccountSnapshots() ([]AccountSnapshot, error) {
	if m.GetAccountSnapshotsErr != nil {
		return nil, m.GetAccountSnapshotsErr
	}

	snapshots := make([]AccountSnapshot, 0, len(m.Snapshots))
	for _, snapshot := range m.Snapshots {
		snapshots = append(snapshots, *snapshot)
	}
	return snapshots, nil
}

// SaveRewards stores reward events keyed by hash and gateway
func (m *MockStore) SaveRewards(rewards []helium.Reward) (int, error) {
	if m.SaveRewardsErr != nil {
		return 0, m.SaveRewardsErr
	}

	inserted := 0
	for _, reward := range rewards {
		key := reward.Hash + "/" + reward.Gateway
		if _, ok := m.Rewards[key]; ok {
			continue
		}
		m.Rewards[key] = reward
		inserted++
	}
	return inserted, nil
}

// GetRewardTotal sums stored rewards for an account
func (m *MockStore) GetRewardTotal(account string) (int64, error) {
	if m.GetRewardTotalErr != nil {
		return 0, m.GetRewardTotalErr
	}

	var total int64
	for _, reward := range m.Rewards {
		if reward.Account == account {
			total += reward.Amount.Bones()
		}
	}
	return total, nil
}
