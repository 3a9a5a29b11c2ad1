package db

import (
	"github.com/vpnda/helium-sync/pkg/helium"
)

// Store defines the interface for snapshot storage operations
type Store interface {
	Initialize() error
	Close() error
	UpsertAccountSnapshot(account *helium.Account) error
	GetAccountSnapshot(address string) (*AccountSnapshot, error)
	GetAccountSnapshots() ([]AccountSnapshot, error)
	SaveRewards(rewards []helium.Reward) (int, error)
	GetRewardTotal(account string) (int64, error)
}

// Ensure DB implements Store
var _ Store = (*DB)(nil)

// Ensure MockStore implements Store
var _ Store = (*MockStore)(nil)
