package identity

import "errors"

var (
	// ErrNilPublicKey indicates a nil public key was supplied.
	ErrNilPublicKey = errors.New("identity: nil public key")

	// ErrInvalidAddress indicates the address string is malformed.
	ErrInvalidAddress = errors.New("identity: invalid address")

	// ErrInvalidKeyData indicates the key material is empty or malformed.
	ErrInvalidKeyData = errors.New("identity: invalid key data")

	// ErrDecryptionFailed indicates wrong password or corrupted key file data.
	ErrDecryptionFailed = errors.New("identity: key decryption failed (wrong password or corrupted data)")

	// ErrChecksumMismatch indicates key checksum verification failed after decryption.
	ErrChecksumMismatch = errors.New("identity: key checksum mismatch")
)
