package helium

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
)

func init() {
	// Network tokens are not in go-money's ISO table, register them once.
	// On-wire amounts are integer bones: 1 HNT = 100,000,000 bones.
	money.AddCurrency("HNT", "HNT", "1 $", ".", ",", 8)
	money.AddCurrency("HST", "HST", "1 $", ".", ",", 8)
}

// HNT is a main network token amount.
type HNT struct {
	value *money.Money
}

// NewHNT builds an amount from a bone count.
func NewHNT(bones int64) HNT {
	return HNT{value: money.New(bones, "HNT")}
}

// UnmarshalJSON decodes the on-wire integer bone count.
func (a *HNT) UnmarshalJSON(data []byte) error {
	bones, err := parseBones(data)
	if err != nil {
		return fmt.Errorf("invalid HNT amount: %w", err)
	}
	a.value = money.New(bones, "HNT")
	return nil
}

func (a HNT) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Bones())
}

// Bones returns the raw on-wire integer amount.
func (a HNT) Bones() int64 {
	if a.value == nil {
		return 0
	}
	return a.value.Amount()
}

// Money returns the amount as a go-money value in the HNT currency.
func (a HNT) Money() *money.Money {
	if a.value == nil {
		return money.New(0, "HNT")
	}
	return a.value
}

func (a HNT) String() string {
	return a.Money().Display()
}

// HST is a security token amount.
type HST struct {
	value *money.Money
}

// NewHST builds an amount from a bone count.
func NewHST(bones int64) HST {
	return HST{value: money.New(bones, "HST")}
}

// UnmarshalJSON decodes the on-wire integer bone count.
func (a *HST) UnmarshalJSON(data []byte) error {
	bones, err := parseBones(data)
	if err != nil {
		return fmt.Errorf("invalid HST amount: %w", err)
	}
	a.value = money.New(bones, "HST")
	return nil
}

func (a HST) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Bones())
}

// Bones returns the raw on-wire integer amount.
func (a HST) Bones() int64 {
	if a.value == nil {
		return 0
	}
	return a.value.Amount()
}

// Money returns the amount as a go-money value in the HST currency.
func (a HST) Money() *money.Money {
	if a.value == nil {
		return money.New(0, "HST")
	}
	return a.value
}

func (a HST) String() string {
	return a.Money().Display()
}

func parseBones(data []byte) (int64, error) {
	var bones int64
	if err := json.Unmarshal(data, &bones); err != nil {
		return 0, err
	}
	if bones < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %d", bones)
	}
	return bones, nil
}
