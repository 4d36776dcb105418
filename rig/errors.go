package rig

import "errors"

var (
	// ErrNotOperator indicates a caller other than the designated operator
	// invoked an operator-only operation.
	ErrNotOperator = errors.New("rig: caller is not the operator")

	// ErrAlreadyRegistered indicates the mining rig is already registered.
	ErrAlreadyRegistered = errors.New("rig: already registered")

	// ErrNotRegistered indicates no registration exists yet.
	ErrNotRegistered = errors.New("rig: mining rig not registered")

	// ErrZeroTotalShares indicates a registration with zero total shares.
	ErrZeroTotalShares = errors.New("rig: zero total shares")

	// ErrExceedsWalletCap indicates a purchase would push the buyer past
	// the per-wallet cumulative cap.
	ErrExceedsWalletCap = errors.New("rig: exceeds max shares per wallet")

	// ErrInsufficientShares indicates fewer unsold shares remain than the
	// purchase amount.
	ErrInsufficientShares = errors.New("rig: insufficient shares available")

	// ErrIncorrectPayment indicates the attached payment does not equal
	// amount * price per share exactly.
	ErrIncorrectPayment = errors.New("rig: incorrect payment")

	// ErrZeroDeposit indicates a reward deposit of zero.
	ErrZeroDeposit = errors.New("rig: deposit amount must be greater than zero")

	// ErrNoSharesBought indicates the caller has no purchase record.
	ErrNoSharesBought = errors.New("rig: no shares bought")

	// ErrLockPeriodNotOver indicates the claim lock period has not elapsed.
	ErrLockPeriodNotOver = errors.New("rig: claim lock period not over")

	// ErrAlreadyClaimed indicates the caller has already claimed rewards.
	ErrAlreadyClaimed = errors.New("rig: already claimed")

	// ErrInsufficientLiquidity indicates the deposited reward pool cannot
	// cover the computed payout.
	ErrInsufficientLiquidity = errors.New("rig: insufficient liquidity deposited")

	// ErrMustClaimFirst indicates a transfer attempt before claiming rewards.
	ErrMustClaimFirst = errors.New("rig: must claim reward before transfer")

	// ErrZeroAddressRecipient indicates a transfer to the null identity.
	ErrZeroAddressRecipient = errors.New("rig: cannot transfer to zero address")

	// ErrInsufficientBalance indicates the caller's share balance is below
	// the transfer amount.
	ErrInsufficientBalance = errors.New("rig: insufficient token balance")

	// ErrLedgerNotApproved indicates the holder has not approved the ledger
	// as an operator on the share issuer.
	ErrLedgerNotApproved = errors.New("rig: ledger not approved on share issuer")

	// ErrInvalidRecordData indicates a stored record is malformed.
	ErrInvalidRecordData = errors.New("rig: invalid record data")

	// ErrRegistrationNotFound indicates no registration record exists for
	// the operator.
	ErrRegistrationNotFound = errors.New("rig: registration not found")

	// ErrUserNotFound indicates no user record exists for the address.
	ErrUserNotFound = errors.New("rig: user not found")

	// ErrNilParam indicates a nil record was supplied.
	ErrNilParam = errors.New("rig: nil parameter")
)

// ErrorCategory classifies ledger errors so callers can distinguish causes
// programmatically without matching message strings.
type ErrorCategory int

const (
	CategoryUnknown ErrorCategory = iota
	CategoryAuthorization
	CategoryState
	CategoryCapacity
	CategoryPayment
	CategoryValidation
)

// String returns the category name.
func (c ErrorCategory) String() string {
	switch c {
	case CategoryAuthorization:
		return "authorization"
	case CategoryState:
		return "state"
	case CategoryCapacity:
		return "capacity"
	case CategoryPayment:
		return "payment"
	case CategoryValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Category maps a ledger error to its taxonomy class. Wrapped errors are
// unwrapped via errors.Is.
func Category(err error) ErrorCategory {
	switch {
	case errors.Is(err, ErrNotOperator), errors.Is(err, ErrLedgerNotApproved):
		return CategoryAuthorization
	case errors.Is(err, ErrAlreadyRegistered), errors.Is(err, ErrNotRegistered),
		errors.Is(err, ErrAlreadyClaimed), errors.Is(err, ErrMustClaimFirst),
		errors.Is(err, ErrNoSharesBought), errors.Is(err, ErrLockPeriodNotOver):
		return CategoryState
	case errors.Is(err, ErrExceedsWalletCap), errors.Is(err, ErrInsufficientShares),
		errors.Is(err, ErrInsufficientBalance):
		return CategoryCapacity
	case errors.Is(err, ErrIncorrectPayment), errors.Is(err, ErrZeroDeposit),
		errors.Is(err, ErrInsufficientLiquidity):
		return CategoryPayment
	case errors.Is(err, ErrZeroTotalShares), errors.Is(err, ErrZeroAddressRecipient):
		return CategoryValidation
	default:
		return CategoryUnknown
	}
}
