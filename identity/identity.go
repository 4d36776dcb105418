// Package identity provides caller identities for the ownership ledger.
//
// An identity is a 20-byte address: HASH160(compressed secp256k1 public
// key), the same derivation used for P2PKH addresses. The zero address is
// reserved as the null identity and is never a valid recipient.
package identity

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// Address is a 20-byte account identity.
type Address [AddressSize]byte

// ZeroAddress is the null identity. Transfers to it are rejected.
var ZeroAddress = Address{}

// NewAddress derives an address from a public key:
// RIPEMD160(SHA256(compressed pubkey)).
func NewAddress(pub *ec.PublicKey) (Address, error) {
	if pub == nil {
		return Address{}, ErrNilPublicKey
	}
	var addr Address
	copy(addr[:], bsvhash.Hash160(pub.Compressed()))
	return addr, nil
}

// ParseAddress decodes a 40-character hex string into an Address.
func ParseAddress(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, AddressSize, len(b))
	}
	var addr Address
	copy(addr[:], b)
	return addr, nil
}

// String returns the hex encoding of the address.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether the address is the null identity.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// KeyPair holds a secp256k1 private key and its derived address.
type KeyPair struct {
	PrivateKey *ec.PrivateKey
	Address    Address
}

// GenerateKey creates a fresh secp256k1 keypair with its address.
func GenerateKey() (*KeyPair, error) {
	priv, err := ec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("identity: generate key: %w", err)
	}
	addr, err := NewAddress(priv.PubKey())
	if err != nil {
		return nil, err
	}
	return &KeyPair{PrivateKey: priv, Address: addr}, nil
}
