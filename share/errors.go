package share

import "errors"

var (
	// ErrAlreadyMinted indicates the single mint event has already occurred.
	ErrAlreadyMinted = errors.New("share: shares already minted")

	// ErrZeroMintQuantity indicates a mint of zero units.
	ErrZeroMintQuantity = errors.New("share: zero mint quantity")

	// ErrNotApproved indicates the caller is neither the holder nor an
	// approved operator of the holder.
	ErrNotApproved = errors.New("share: caller not approved")

	// ErrInsufficientBalance indicates the sender balance is below the
	// transfer amount.
	ErrInsufficientBalance = errors.New("share: insufficient balance")

	// ErrZeroAddressRecipient indicates a transfer to the null identity.
	ErrZeroAddressRecipient = errors.New("share: transfer to zero address")
)
