package rig

import (
	"encoding/binary"
	"fmt"

	"github.com/rigshare/librigshare-go/identity"
)

const (
	// registration: operator(20) + flags(1) + total(8) + price(8) +
	// sold(8) + rewards(8) + registered_at(8)
	registrationRecordSize = 61

	// user: address(20) + shares_bought(8) + flags(1) + claimed(8) +
	// first_purchase_at(8)
	userRecordSize = 45

	flagRegistered uint8 = 0x01
	flagClaimed    uint8 = 0x01
)

// SerializeRegistration encodes a RegistrationInfo to binary format.
func SerializeRegistration(info *RegistrationInfo) []byte {
	buf := make([]byte, registrationRecordSize)
	copy(buf[0:20], info.Operator[:])
	if info.IsRegistered {
		buf[20] = flagRegistered
	}
	binary.BigEndian.PutUint64(buf[21:29], info.TotalShares)
	binary.BigEndian.PutUint64(buf[29:37], info.PricePerShare)
	binary.BigEndian.PutUint64(buf[37:45], info.SharesSold)
	binary.BigEndian.PutUint64(buf[45:53], info.DepositedRewards)
	binary.BigEndian.PutUint64(buf[53:61], uint64(info.RegisteredAt))
	return buf
}

// DeserializeRegistration decodes binary data into a RegistrationInfo.
func DeserializeRegistration(data []byte) (*RegistrationInfo, error) {
	if len(data) != registrationRecordSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidRecordData, registrationRecordSize, len(data))
	}
	info := &RegistrationInfo{}
	copy(info.Operator[:], data[0:20])
	info.IsRegistered = data[20]&flagRegistered != 0
	info.TotalShares = binary.BigEndian.Uint64(data[21:29])
	info.PricePerShare = binary.BigEndian.Uint64(data[29:37])
	info.SharesSold = binary.BigEndian.Uint64(data[37:45])
	info.DepositedRewards = binary.BigEndian.Uint64(data[45:53])
	info.RegisteredAt = int64(binary.BigEndian.Uint64(data[53:61]))
	return info, nil
}

// SerializeUser encodes a UserInfo to binary format.
func SerializeUser(info *UserInfo) []byte {
	buf := make([]byte, userRecordSize)
	copy(buf[0:20], info.Address[:])
	binary.BigEndian.PutUint64(buf[20:28], info.SharesBought)
	if info.HasRewardClaimed {
		buf[28] = flagClaimed
	}
	binary.BigEndian.PutUint64(buf[29:37], info.ClaimedAmount)
	binary.BigEndian.PutUint64(buf[37:45], uint64(info.FirstPurchaseAt))
	return buf
}

// DeserializeUser decodes binary data into a UserInfo.
func DeserializeUser(data []byte) (*UserInfo, error) {
	if len(data) != userRecordSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidRecordData, userRecordSize, len(data))
	}
	info := &UserInfo{}
	copy(info.Address[:], data[0:20])
	info.SharesBought = binary.BigEndian.Uint64(data[20:28])
	info.HasRewardClaimed = data[28]&flagClaimed != 0
	info.ClaimedAmount = binary.BigEndian.Uint64(data[29:37])
	info.FirstPurchaseAt = int64(binary.BigEndian.Uint64(data[37:45]))
	return info, nil
}

// addressKey returns the store key for an address.
func addressKey(addr identity.Address) []byte {
	k := make([]byte, identity.AddressSize)
	copy(k, addr[:])
	return k
}
