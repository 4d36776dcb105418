package rig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempBoltStore(t *testing.T) *BoltStore {
	t.Helper()
	dir := t.TempDir()
	store, err := OpenBoltStore(filepath.Join(dir, "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRegistration() *RegistrationInfo {
	return &RegistrationInfo{
		Operator:         makeAddr(0xAA),
		IsRegistered:     true,
		TotalShares:      100,
		PricePerShare:    1000,
		SharesSold:       5,
		DepositedRewards: 700,
		RegisteredAt:     1700000000,
	}
}

func testUser(seed byte, shares uint64) *UserInfo {
	return &UserInfo{
		Address:         makeAddr(seed),
		SharesBought:    shares,
		FirstPurchaseAt: 1700000100,
	}
}

// runStoreTests exercises the Store contract against any implementation.
func runStoreTests(t *testing.T, store Store) {
	t.Run("registration not found", func(t *testing.T) {
		_, err := store.GetRegistration(makeAddr(0x7F))
		assert.ErrorIs(t, err, ErrRegistrationNotFound)
	})

	t.Run("registration round trip", func(t *testing.T) {
		reg := testRegistration()
		require.NoError(t, store.PutRegistration(reg))

		got, err := store.GetRegistration(reg.Operator)
		require.NoError(t, err)
		assert.Equal(t, reg, got)
	})

	t.Run("registration overwrite", func(t *testing.T) {
		reg := testRegistration()
		reg.SharesSold = 42
		require.NoError(t, store.PutRegistration(reg))

		got, err := store.GetRegistration(reg.Operator)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), got.SharesSold)
	})

	t.Run("user not found", func(t *testing.T) {
		_, err := store.GetUser(makeAddr(0x7E))
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("user round trip", func(t *testing.T) {
		user := testUser(0x01, 5)
		require.NoError(t, store.PutUser(user))

		got, err := store.GetUser(user.Address)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("combined write", func(t *testing.T) {
		user := testUser(0x02, 3)
		user.HasRewardClaimed = true
		user.ClaimedAmount = 300
		reg := testRegistration()
		reg.DepositedRewards = 400

		require.NoError(t, store.PutUserAndRegistration(user, reg))

		gotUser, err := store.GetUser(user.Address)
		require.NoError(t, err)
		assert.Equal(t, user, gotUser)

		gotReg, err := store.GetRegistration(reg.Operator)
		require.NoError(t, err)
		assert.Equal(t, uint64(400), gotReg.DepositedRewards)
	})

	t.Run("list users", func(t *testing.T) {
		users, err := store.ListUsers()
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("nil records rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.PutRegistration(nil), ErrNilParam)
		assert.ErrorIs(t, store.PutUser(nil), ErrNilParam)
		assert.ErrorIs(t, store.PutUserAndRegistration(nil, testRegistration()), ErrNilParam)
		assert.ErrorIs(t, store.PutUserAndRegistration(testUser(0x03, 1), nil), ErrNilParam)
	})
}

func TestMemStore(t *testing.T) {
	runStoreTests(t, NewMemStore())
}

func TestBoltStore(t *testing.T) {
	runStoreTests(t, tempBoltStore(t))
}

func TestMemStore_ReturnsCopies(t *testing.T) {
	store := NewMemStore()
	reg := testRegistration()
	require.NoError(t, store.PutRegistration(reg))

	got, err := store.GetRegistration(reg.Operator)
	require.NoError(t, err)
	got.SharesSold = 9999

	again, err := store.GetRegistration(reg.Operator)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), again.SharesSold)
}

func TestBoltStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	store, err := OpenBoltStore(path)
	require.NoError(t, err)
	reg := testRegistration()
	require.NoError(t, store.PutRegistration(reg))
	require.NoError(t, store.PutUser(testUser(0x01, 5)))
	require.NoError(t, store.Close())

	reopened, err := OpenBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetRegistration(reg.Operator)
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	users, err := reopened.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestOpenBoltStore_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "ledger.db")

	store, err := OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.GetRegistration(makeAddr(0x01))
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}
