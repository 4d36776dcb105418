package payment

import "errors"

var (
	// ErrInsufficientFunds indicates the paying account balance is too low.
	ErrInsufficientFunds = errors.New("payment: insufficient funds")

	// ErrIncorrectAmount indicates the attached payment does not match the
	// required total exactly.
	ErrIncorrectAmount = errors.New("payment: incorrect payment amount")

	// ErrInvoiceExpired indicates the invoice has passed its expiry time.
	ErrInvoiceExpired = errors.New("payment: invoice expired")

	// ErrZeroAddressAccount indicates a transfer to the null identity.
	ErrZeroAddressAccount = errors.New("payment: zero address account")
)
