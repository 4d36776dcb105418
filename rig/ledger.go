package rig

import (
	"errors"
	"fmt"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/rigshare/librigshare-go/events"
	"github.com/rigshare/librigshare-go/identity"
	"github.com/rigshare/librigshare-go/payment"
)

// ShareTokenID is the share id the ledger custodies and mints.
const ShareTokenID uint64 = 1

// ShareIssuer is the capability surface the ledger needs from the share
// token primitive.
type ShareIssuer interface {
	// Mint creates qty units of ShareTokenID credited to caller. Callable
	// at most once globally.
	Mint(caller identity.Address, qty uint64) error

	// Minted reports whether the single mint event has occurred.
	Minted() bool

	// IsApprovedForAll reports whether operator may move holder's balances.
	IsApprovedForAll(holder, operator identity.Address) bool

	// BalanceOf returns the holder's balance for the given id.
	BalanceOf(holder identity.Address, id uint64) uint64

	// SafeTransferFrom moves amount units of id between holders.
	SafeTransferFrom(caller, from, to identity.Address, id, amount uint64) error
}

// Ledger enforces the ownership rules for a single mining rig
// registration. One write lock serializes all mutating operations; each
// checks every precondition before applying any effect, so a failed call
// leaves ledger, bank, and issuer state unchanged. Record writes happen
// after the bank and issuer moves; a store that fails mid-operation can
// therefore lag the moved funds, and the returned error reports which
// write was lost.
type Ledger struct {
	mu deadlock.RWMutex

	operator identity.Address // designated operator, fixed at construction
	addr     identity.Address // ledger's own account: share custody + reward escrow

	params Params
	issuer ShareIssuer
	bank   payment.Bank
	store  Store
	sink   events.Sink
	nowFn  func() int64
}

// Option configures optional ledger behavior.
type Option func(*Ledger)

// WithParams overrides the reference enforcement constants.
func WithParams(p Params) Option {
	return func(l *Ledger) { l.params = p }
}

// WithSink sets the event sink. Nil resets to events.NoopSink.
func WithSink(sink events.Sink) Option {
	return func(l *Ledger) {
		if sink == nil {
			sink = events.NoopSink{}
		}
		l.sink = sink
	}
}

// WithNowFunc overrides the time source. Primarily for tests.
func WithNowFunc(now func() int64) Option {
	return func(l *Ledger) {
		if now != nil {
			l.nowFn = now
		}
	}
}

// NewLedger creates a ledger for the designated operator. ledgerAddr is
// the ledger's own account identity, used for share custody and the
// reward escrow balance.
func NewLedger(operator, ledgerAddr identity.Address, issuer ShareIssuer, bank payment.Bank, store Store, opts ...Option) (*Ledger, error) {
	if operator.IsZero() || ledgerAddr.IsZero() {
		return nil, fmt.Errorf("%w: operator and ledger address", ErrNilParam)
	}
	if issuer == nil || bank == nil || store == nil {
		return nil, fmt.Errorf("%w: issuer, bank, and store", ErrNilParam)
	}

	l := &Ledger{
		operator: operator,
		addr:     ledgerAddr,
		params:   DefaultParams(),
		issuer:   issuer,
		bank:     bank,
		store:    store,
		sink:     events.NoopSink{},
		nowFn:    func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Operator returns the designated operator identity.
func (l *Ledger) Operator() identity.Address { return l.operator }

// Address returns the ledger's own account identity.
func (l *Ledger) Address() identity.Address { return l.addr }

// Params returns the enforcement constants in effect.
func (l *Ledger) Params() Params { return l.params }

// RegisterMiningRig declares the rig's share supply and price, mints the
// supply if not already minted, and pulls it into ledger custody. The
// operator must have pre-approved the ledger on the share issuer; the
// approval is checked before minting so a rejected pull leaves no trace.
func (l *Ledger) RegisterMiningRig(caller identity.Address, totalShares, pricePerShare uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.operator {
		return fmt.Errorf("%w: %s", ErrNotOperator, caller)
	}
	if reg, err := l.store.GetRegistration(l.operator); err == nil && reg.IsRegistered {
		return ErrAlreadyRegistered
	} else if err != nil && !errors.Is(err, ErrRegistrationNotFound) {
		return err
	}
	if totalShares == 0 {
		return ErrZeroTotalShares
	}
	if !l.issuer.IsApprovedForAll(l.operator, l.addr) {
		return fmt.Errorf("%w: operator %s", ErrLedgerNotApproved, l.operator)
	}

	if !l.issuer.Minted() {
		if err := l.issuer.Mint(l.operator, totalShares); err != nil {
			return fmt.Errorf("rig: mint shares: %w", err)
		}
	}
	if err := l.issuer.SafeTransferFrom(l.addr, l.operator, l.addr, ShareTokenID, totalShares); err != nil {
		return fmt.Errorf("rig: pull shares into custody: %w", err)
	}

	info := &RegistrationInfo{
		Operator:      l.operator,
		IsRegistered:  true,
		TotalShares:   totalShares,
		PricePerShare: pricePerShare,
		RegisteredAt:  l.nowFn(),
	}
	if err := l.store.PutRegistration(info); err != nil {
		return fmt.Errorf("rig: persist registration: %w", err)
	}

	l.sink.Emit(newRegisteredEvent(info))
	return nil
}

// BuyShares sells amount units of shareID to the caller for an exact
// payment of amount * price per share. The payment is forwarded to the
// operator and the shares move from ledger custody to the buyer.
func (l *Ledger) BuyShares(caller identity.Address, amount, shareID, attached uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	reg, err := l.registration()
	if err != nil {
		return err
	}

	user, err := l.userOrNew(caller)
	if err != nil {
		return err
	}
	// Subtraction keeps the headroom checks exact for any amount up to
	// the full uint64 range. SharesBought never exceeds the cap and
	// SharesSold never exceeds the supply, so neither difference wraps.
	if amount > l.params.WalletCap-user.SharesBought {
		return fmt.Errorf("%w: %s holds %d, cap %d", ErrExceedsWalletCap, caller, user.SharesBought, l.params.WalletCap)
	}
	if amount > reg.TotalShares-reg.SharesSold {
		return fmt.Errorf("%w: %d sold of %d", ErrInsufficientShares, reg.SharesSold, reg.TotalShares)
	}
	if err := payment.VerifyExact(attached, amount*reg.PricePerShare); err != nil {
		return fmt.Errorf("%w: %w", ErrIncorrectPayment, err)
	}
	if l.issuer.BalanceOf(l.addr, shareID) < amount {
		return fmt.Errorf("%w: no custody of id %d", ErrInsufficientShares, shareID)
	}

	if err := l.bank.Transfer(caller, l.operator, attached); err != nil {
		return fmt.Errorf("rig: forward payment: %w", err)
	}
	if err := l.issuer.SafeTransferFrom(l.addr, l.addr, caller, shareID, amount); err != nil {
		// Custody was pre-checked; restore the payment if the issuer
		// still refuses.
		if refundErr := l.bank.Transfer(l.operator, caller, attached); refundErr != nil {
			return fmt.Errorf("rig: deliver shares: %w (refund failed: %w)", err, refundErr)
		}
		return fmt.Errorf("rig: deliver shares: %w", err)
	}

	reg.SharesSold += amount
	user.SharesBought += amount
	if user.FirstPurchaseAt == 0 {
		user.FirstPurchaseAt = l.nowFn()
	}
	if err := l.store.PutUserAndRegistration(user, reg); err != nil {
		return fmt.Errorf("rig: persist purchase: %w", err)
	}

	l.sink.Emit(newSharesBoughtEvent(caller, amount, reg.SharesSold))
	return nil
}

// DepositRewards moves amount from the operator into the ledger's reward
// escrow. Deposits accumulate across calls with no upper bound.
func (l *Ledger) DepositRewards(caller identity.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.operator {
		return fmt.Errorf("%w: %s", ErrNotOperator, caller)
	}
	reg, err := l.registration()
	if err != nil {
		return err
	}
	if amount == 0 {
		return ErrZeroDeposit
	}

	if err := l.bank.Transfer(l.operator, l.addr, amount); err != nil {
		return fmt.Errorf("rig: escrow deposit: %w", err)
	}

	reg.DepositedRewards += amount
	if err := l.store.PutRegistration(reg); err != nil {
		return fmt.Errorf("rig: persist deposit: %w", err)
	}

	l.sink.Emit(newRewardsDepositedEvent(caller, amount))
	return nil
}

// ClaimRewards pays the caller shares bought times the fixed reward rate,
// once, after the lock period has elapsed since their first purchase.
func (l *Ledger) ClaimRewards(caller identity.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, err := l.store.GetUser(caller)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return fmt.Errorf("%w: %s", ErrNoSharesBought, caller)
		}
		return err
	}
	if user.SharesBought == 0 {
		return fmt.Errorf("%w: %s", ErrNoSharesBought, caller)
	}
	if l.nowFn()-user.FirstPurchaseAt < l.params.LockPeriod {
		return fmt.Errorf("%w: %d seconds required", ErrLockPeriodNotOver, l.params.LockPeriod)
	}
	if user.HasRewardClaimed {
		return fmt.Errorf("%w: %s", ErrAlreadyClaimed, caller)
	}

	reg, err := l.registration()
	if err != nil {
		return err
	}
	payout := user.SharesBought * l.params.RewardPerShare
	if payout > reg.DepositedRewards {
		return fmt.Errorf("%w: need %d, pool holds %d", ErrInsufficientLiquidity, payout, reg.DepositedRewards)
	}

	if err := l.bank.Transfer(l.addr, caller, payout); err != nil {
		return fmt.Errorf("rig: pay rewards: %w", err)
	}

	user.HasRewardClaimed = true
	user.ClaimedAmount = payout
	reg.DepositedRewards -= payout
	if err := l.store.PutUserAndRegistration(user, reg); err != nil {
		return fmt.Errorf("rig: persist claim: %w", err)
	}

	l.sink.Emit(newRewardsClaimedEvent(caller, payout, reg.DepositedRewards))
	return nil
}

// TransferToken moves the caller's shares to another wallet through the
// ledger, which re-validates the claim gate before delegating to the
// issuer. The caller must have pre-approved the ledger on the issuer.
func (l *Ledger) TransferToken(caller, to identity.Address, amount, shareID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, err := l.store.GetUser(caller)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return fmt.Errorf("%w: %s", ErrMustClaimFirst, caller)
		}
		return err
	}
	if !user.HasRewardClaimed {
		return fmt.Errorf("%w: %s", ErrMustClaimFirst, caller)
	}
	if to.IsZero() {
		return ErrZeroAddressRecipient
	}
	if l.issuer.BalanceOf(caller, shareID) < amount {
		return fmt.Errorf("%w: %s has %d of id %d, needs %d", ErrInsufficientBalance, caller, l.issuer.BalanceOf(caller, shareID), shareID, amount)
	}

	if err := l.issuer.SafeTransferFrom(l.addr, caller, to, shareID, amount); err != nil {
		return fmt.Errorf("rig: transfer token: %w", err)
	}

	l.sink.Emit(newTokensTransferredEvent(caller, to, amount))
	return nil
}

// Registration returns a copy of the registration record.
func (l *Ledger) Registration() (*RegistrationInfo, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	reg, err := l.store.GetRegistration(l.operator)
	if err != nil {
		if errors.Is(err, ErrRegistrationNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}
	return reg, nil
}

// User returns a copy of the user record for a buyer address.
func (l *Ledger) User(addr identity.Address) (*UserInfo, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.GetUser(addr)
}

// registration loads the registration record. Caller must hold the lock.
func (l *Ledger) registration() (*RegistrationInfo, error) {
	reg, err := l.store.GetRegistration(l.operator)
	if err != nil {
		if errors.Is(err, ErrRegistrationNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}
	if !reg.IsRegistered {
		return nil, ErrNotRegistered
	}
	return reg, nil
}

// userOrNew loads the caller's record or returns a fresh zero record.
// Caller must hold the lock.
func (l *Ledger) userOrNew(addr identity.Address) (*UserInfo, error) {
	user, err := l.store.GetUser(addr)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return &UserInfo{Address: addr}, nil
		}
		return nil, err
	}
	return user, nil
}
