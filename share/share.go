// Package share implements the ShareIssuer: a single fungible,
// id-scoped ownership unit ("share id 1") with a mint-once latch,
// holder balances, operator approvals, and a safe transfer primitive.
//
// The issuer owns balance and approval state only. All business rules
// (caps, lock periods, claim gating) live in the rig package, which
// drives the issuer as an approved operator.
package share

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/rigshare/librigshare-go/events"
	"github.com/rigshare/librigshare-go/identity"
)

// TokenID is the single share id managed by the issuer.
const TokenID uint64 = 1

// Event types emitted by the issuer.
const (
	EventTypeMinted      = "share.minted"
	EventTypeTransferred = "share.transferred"
	EventTypeApproval    = "share.approval"
)

// Issuer holds share balances and approvals for a single token id.
// All methods are safe for concurrent use.
type Issuer struct {
	mu        sync.RWMutex
	minted    bool
	balances  map[identity.Address]map[uint64]uint64
	approvals map[identity.Address]map[identity.Address]bool
	sink      events.Sink
}

// NewIssuer creates an issuer with no minted supply. A nil sink defaults
// to events.NoopSink.
func NewIssuer(sink events.Sink) *Issuer {
	if sink == nil {
		sink = events.NoopSink{}
	}
	return &Issuer{
		balances:  make(map[identity.Address]map[uint64]uint64),
		approvals: make(map[identity.Address]map[identity.Address]bool),
		sink:      sink,
	}
}

// Mint creates qty units of TokenID credited to the caller. It may be
// called at most once globally; subsequent calls fail with ErrAlreadyMinted.
func (i *Issuer) Mint(caller identity.Address, qty uint64) error {
	if qty == 0 {
		return ErrZeroMintQuantity
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.minted {
		return ErrAlreadyMinted
	}
	i.minted = true
	i.credit(caller, TokenID, qty)

	i.sink.Emit(events.Event{
		Type: EventTypeMinted,
		Attributes: map[string]string{
			"holder":   caller.String(),
			"id":       strconv.FormatUint(TokenID, 10),
			"quantity": strconv.FormatUint(qty, 10),
		},
	})
	return nil
}

// Minted reports whether the single mint event has occurred.
func (i *Issuer) Minted() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.minted
}

// SetApprovalForAll records whether operator may move the caller's
// balances. Idempotent.
func (i *Issuer) SetApprovalForAll(caller, operator identity.Address, approved bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	ops := i.approvals[caller]
	if ops == nil {
		ops = make(map[identity.Address]bool)
		i.approvals[caller] = ops
	}
	ops[operator] = approved

	i.sink.Emit(events.Event{
		Type: EventTypeApproval,
		Attributes: map[string]string{
			"holder":   caller.String(),
			"operator": operator.String(),
			"approved": strconv.FormatBool(approved),
		},
	})
}

// IsApprovedForAll reports whether operator may move holder's balances.
func (i *Issuer) IsApprovedForAll(holder, operator identity.Address) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.approvals[holder][operator]
}

// BalanceOf returns the holder's balance for the given id.
func (i *Issuer) BalanceOf(holder identity.Address, id uint64) uint64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.balances[holder][id]
}

// TotalSupply returns the sum of all balances for the given id.
func (i *Issuer) TotalSupply(id uint64) uint64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	var total uint64
	for _, byID := range i.balances {
		total += byID[id]
	}
	return total
}

// SafeTransferFrom moves amount units of id from one holder to another.
// The caller must be the sender or an approved operator of the sender.
// Total supply is conserved; a failed transfer changes nothing.
func (i *Issuer) SafeTransferFrom(caller, from, to identity.Address, id, amount uint64) error {
	if to.IsZero() {
		return fmt.Errorf("%w: from %s", ErrZeroAddressRecipient, from)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if caller != from && !i.approvals[from][caller] {
		return fmt.Errorf("%w: %s cannot move balances of %s", ErrNotApproved, caller, from)
	}
	if i.balances[from][id] < amount {
		return fmt.Errorf("%w: %s has %d of id %d, needs %d", ErrInsufficientBalance, from, i.balances[from][id], id, amount)
	}

	i.debit(from, id, amount)
	i.credit(to, id, amount)

	i.sink.Emit(events.Event{
		Type: EventTypeTransferred,
		Attributes: map[string]string{
			"from":   from.String(),
			"to":     to.String(),
			"id":     strconv.FormatUint(id, 10),
			"amount": strconv.FormatUint(amount, 10),
		},
	})
	return nil
}

// debit removes units from a holder whose balance has already been
// checked. A holder with no balance entry only ever debits zero, so the
// missing inner map stays untouched. Caller must hold the write lock.
func (i *Issuer) debit(holder identity.Address, id, amount uint64) {
	if byID := i.balances[holder]; byID != nil {
		byID[id] -= amount
	}
}

// credit adds units to a holder. Caller must hold the write lock.
func (i *Issuer) credit(holder identity.Address, id, amount uint64) {
	byID := i.balances[holder]
	if byID == nil {
		byID = make(map[uint64]uint64)
		i.balances[holder] = byID
	}
	byID[id] += amount
}
