package identity

import (
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress_MatchesHash160(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	addr, err := NewAddress(priv.PubKey())
	require.NoError(t, err)

	want := bsvhash.Hash160(priv.PubKey().Compressed())
	assert.Equal(t, want, addr[:])
}

func TestNewAddress_NilKey(t *testing.T) {
	_, err := NewAddress(nil)
	assert.ErrorIs(t, err, ErrNilPublicKey)
}

func TestParseAddress_RoundTrip(t *testing.T) {
	kp, err := GenerateKey()
	require.NoError(t, err)

	parsed, err := ParseAddress(kp.Address.String())
	require.NoError(t, err)
	assert.Equal(t, kp.Address, parsed)
}

func TestParseAddress_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not hex", "zz" + ZeroAddress.String()[2:]},
		{"too short", "abcd"},
		{"too long", ZeroAddress.String() + "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.input)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())

	kp, err := GenerateKey()
	require.NoError(t, err)
	assert.False(t, kp.Address.IsZero())
}

func TestGenerateKey_Distinct(t *testing.T) {
	a, err := GenerateKey()
	require.NoError(t, err)
	b, err := GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, a.Address, b.Address)
}

// ---------------------------------------------------------------------------
// Keystore tests
// ---------------------------------------------------------------------------

func TestEncryptDecryptKey_RoundTrip(t *testing.T) {
	kp, err := GenerateKey()
	require.NoError(t, err)

	encrypted, err := EncryptKey(kp.PrivateKey, "correct horse")
	require.NoError(t, err)

	decrypted, err := DecryptKey(encrypted, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateKey.Serialize(), decrypted.PrivateKey.Serialize())
	assert.Equal(t, kp.Address, decrypted.Address)
}

func TestDecryptKey_WrongPassword(t *testing.T) {
	kp, err := GenerateKey()
	require.NoError(t, err)

	encrypted, err := EncryptKey(kp.PrivateKey, "right")
	require.NoError(t, err)

	_, err = DecryptKey(encrypted, "wrong")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptKey_Truncated(t *testing.T) {
	_, err := DecryptKey([]byte{0x01, 0x02, 0x03}, "pw")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptKey_Corrupted(t *testing.T) {
	kp, err := GenerateKey()
	require.NoError(t, err)

	encrypted, err := EncryptKey(kp.PrivateKey, "pw")
	require.NoError(t, err)

	// Flip a ciphertext byte; GCM authentication must reject it.
	encrypted[len(encrypted)-1] ^= 0xFF
	_, err = DecryptKey(encrypted, "pw")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptKey_NilKey(t *testing.T) {
	_, err := EncryptKey(nil, "pw")
	assert.ErrorIs(t, err, ErrInvalidKeyData)
}

func TestEncryptKey_RandomSalt(t *testing.T) {
	kp, err := GenerateKey()
	require.NoError(t, err)

	a, err := EncryptKey(kp.PrivateKey, "pw")
	require.NoError(t, err)
	b, err := EncryptKey(kp.PrivateKey, "pw")
	require.NoError(t, err)

	// Same key and password must never produce the same ciphertext.
	assert.NotEqual(t, a, b)
}
