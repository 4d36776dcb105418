// Package rig implements the OwnershipLedger: registration of a mining
// rig with a fixed share supply, capped exact-payment purchases, reward
// deposits, time-locked one-shot claims, and claim-gated share transfers.
//
// The ledger owns all business rules. Balance and approval state lives in
// the share package; funds movement is delegated to a payment.Bank. Every
// mutating operation is serial and all-or-nothing: state is untouched on
// any failure path.
package rig

import "github.com/rigshare/librigshare-go/identity"

// Reference behavior constants. Overridable via Params.
const (
	// DefaultWalletCap is the maximum cumulative shares one buyer may
	// ever purchase.
	DefaultWalletCap uint64 = 10

	// DefaultLockPeriod is the seconds a buyer must wait after their
	// first purchase before claiming.
	DefaultLockPeriod int64 = 121

	// DefaultRewardPerShare is the fixed claim payout per share held,
	// in base units.
	DefaultRewardPerShare uint64 = 100
)

// Params configures the enforcement constants of a ledger instance.
type Params struct {
	WalletCap      uint64 // per-wallet cumulative purchase cap
	LockPeriod     int64  // claim lock in seconds from first purchase
	RewardPerShare uint64 // fixed payout rate per share
}

// DefaultParams returns the reference behavior constants.
func DefaultParams() Params {
	return Params{
		WalletCap:      DefaultWalletCap,
		LockPeriod:     DefaultLockPeriod,
		RewardPerShare: DefaultRewardPerShare,
	}
}

// RegistrationInfo is the per-operator registration record. Identity
// fields are fixed at registration; only SharesSold and DepositedRewards
// mutate afterward.
type RegistrationInfo struct {
	Operator         identity.Address
	IsRegistered     bool
	TotalShares      uint64
	PricePerShare    uint64
	SharesSold       uint64 // monotonically non-decreasing, <= TotalShares
	DepositedRewards uint64 // sum of deposits minus sum of payouts
	RegisteredAt     int64  // Unix seconds
}

// UserInfo is the per-buyer record. Created lazily on first purchase.
// HasRewardClaimed flips false -> true exactly once; ClaimedAmount is
// written at claim time and never mutated again.
type UserInfo struct {
	Address          identity.Address
	SharesBought     uint64
	HasRewardClaimed bool
	ClaimedAmount    uint64
	FirstPurchaseAt  int64 // Unix seconds, lock period anchor
}
