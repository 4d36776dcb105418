package rig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigshare/librigshare-go/identity"
)

func makeAddr(seed byte) identity.Address {
	var addr identity.Address
	for i := range addr {
		addr[i] = seed
	}
	return addr
}

func TestSerializeRegistration_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		info *RegistrationInfo
	}{
		{"registered", &RegistrationInfo{
			Operator:         makeAddr(0xAA),
			IsRegistered:     true,
			TotalShares:      100,
			PricePerShare:    1000,
			SharesSold:       37,
			DepositedRewards: 80000,
			RegisteredAt:     1700000000,
		}},
		{"zero counters", &RegistrationInfo{
			Operator:      makeAddr(0x01),
			IsRegistered:  true,
			TotalShares:   1,
			PricePerShare: 1,
			RegisteredAt:  1,
		}},
		{"unregistered", &RegistrationInfo{
			Operator: makeAddr(0x02),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := SerializeRegistration(tt.info)
			assert.Len(t, data, registrationRecordSize)

			decoded, err := DeserializeRegistration(data)
			require.NoError(t, err)
			assert.Equal(t, tt.info, decoded)
		})
	}
}

func TestDeserializeRegistration_WrongSize(t *testing.T) {
	_, err := DeserializeRegistration([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrInvalidRecordData)

	long := make([]byte, registrationRecordSize+1)
	_, err = DeserializeRegistration(long)
	assert.ErrorIs(t, err, ErrInvalidRecordData)
}

func TestSerializeUser_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		info *UserInfo
	}{
		{"claimed", &UserInfo{
			Address:          makeAddr(0xBB),
			SharesBought:     10,
			HasRewardClaimed: true,
			ClaimedAmount:    1000,
			FirstPurchaseAt:  1700000123,
		}},
		{"unclaimed", &UserInfo{
			Address:         makeAddr(0xCC),
			SharesBought:    3,
			FirstPurchaseAt: 1700000456,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := SerializeUser(tt.info)
			assert.Len(t, data, userRecordSize)

			decoded, err := DeserializeUser(data)
			require.NoError(t, err)
			assert.Equal(t, tt.info, decoded)
		})
	}
}

func TestDeserializeUser_WrongSize(t *testing.T) {
	_, err := DeserializeUser([]byte{0x01})
	assert.ErrorIs(t, err, ErrInvalidRecordData)
}
