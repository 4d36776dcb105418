// Package payment models the value-transfer channel the ownership ledger
// depends on: funds attach to a call, the required amount is verified
// exactly, and the funds move atomically to a recipient account.
//
// Amounts are unsigned 64-bit base units. There is no change-making: a
// payment either matches the required total exactly or the operation fails.
package payment

import (
	"fmt"
	"sync"

	"github.com/rigshare/librigshare-go/identity"
)

// Bank moves funds between accounts. Implementations must be atomic: a
// failed transfer leaves both accounts unchanged.
type Bank interface {
	// Transfer moves amount from one account to another.
	Transfer(from, to identity.Address, amount uint64) error

	// BalanceOf returns the current balance of an account.
	BalanceOf(addr identity.Address) uint64
}

// MemBank is an in-memory Bank for tests and single-process deployments.
type MemBank struct {
	mu       sync.RWMutex
	balances map[identity.Address]uint64
}

// Compile-time interface check.
var _ Bank = (*MemBank)(nil)

// NewMemBank creates an empty in-memory bank.
func NewMemBank() *MemBank {
	return &MemBank{balances: make(map[identity.Address]uint64)}
}

// Credit adds funds to an account. Test and genesis funding only.
func (b *MemBank) Credit(addr identity.Address, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[addr] += amount
}

// Transfer moves amount from one account to another.
func (b *MemBank) Transfer(from, to identity.Address, amount uint64) error {
	if to.IsZero() {
		return fmt.Errorf("%w: transfer to %s", ErrZeroAddressAccount, to)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[from] < amount {
		return fmt.Errorf("%w: account %s has %d, needs %d", ErrInsufficientFunds, from, b.balances[from], amount)
	}
	b.balances[from] -= amount
	b.balances[to] += amount
	return nil
}

// BalanceOf returns the current balance of an account.
func (b *MemBank) BalanceOf(addr identity.Address) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[addr]
}

// TotalFunds returns the sum of all account balances.
func (b *MemBank) TotalFunds() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var total uint64
	for _, v := range b.balances {
		total += v
	}
	return total
}

// VerifyExact checks the attached payment against the required total. Both
// underpayment and overpayment are rejected.
func VerifyExact(attached, required uint64) error {
	if attached != required {
		return fmt.Errorf("%w: attached %d, required %d", ErrIncorrectAmount, attached, required)
	}
	return nil
}
