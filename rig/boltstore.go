package rig

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/rigshare/librigshare-go/identity"
)

var (
	bucketRegistrations = []byte("registrations")
	bucketUsers         = []byte("users")
)

// BoltStore persists ledger records in a bbolt database. Records use the
// fixed-size binary codecs from codec.go.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("rig: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("rig: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRegistrations, bucketUsers} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("rig: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// PutRegistration stores or overwrites the registration record.
func (s *BoltStore) PutRegistration(info *RegistrationInfo) error {
	if info == nil {
		return fmt.Errorf("%w: registration", ErrNilParam)
	}
	data := SerializeRegistration(info)
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRegistrations).Put(addressKey(info.Operator), data); err != nil {
			return fmt.Errorf("boltstore: put registration: %w", err)
		}
		return nil
	})
}

// GetRegistration retrieves the registration record for an operator.
func (s *BoltStore) GetRegistration(operator identity.Address) (*RegistrationInfo, error) {
	var info *RegistrationInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRegistrations).Get(addressKey(operator))
		if data == nil {
			return ErrRegistrationNotFound
		}
		decoded, err := DeserializeRegistration(data)
		if err != nil {
			return fmt.Errorf("boltstore: decode registration: %w", err)
		}
		info = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// PutUser stores or overwrites the user record.
func (s *BoltStore) PutUser(info *UserInfo) error {
	if info == nil {
		return fmt.Errorf("%w: user", ErrNilParam)
	}
	data := SerializeUser(info)
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketUsers).Put(addressKey(info.Address), data); err != nil {
			return fmt.Errorf("boltstore: put user: %w", err)
		}
		return nil
	})
}

// GetUser retrieves the user record for a buyer address.
func (s *BoltStore) GetUser(addr identity.Address) (*UserInfo, error) {
	var info *UserInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketUsers).Get(addressKey(addr))
		if data == nil {
			return ErrUserNotFound
		}
		decoded, err := DeserializeUser(data)
		if err != nil {
			return fmt.Errorf("boltstore: decode user: %w", err)
		}
		info = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// PutUserAndRegistration stores both records in a single transaction.
func (s *BoltStore) PutUserAndRegistration(user *UserInfo, reg *RegistrationInfo) error {
	if user == nil || reg == nil {
		return fmt.Errorf("%w: user and registration", ErrNilParam)
	}
	userData := SerializeUser(user)
	regData := SerializeRegistration(reg)
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketUsers).Put(addressKey(user.Address), userData); err != nil {
			return fmt.Errorf("boltstore: put user: %w", err)
		}
		if err := tx.Bucket(bucketRegistrations).Put(addressKey(reg.Operator), regData); err != nil {
			return fmt.Errorf("boltstore: put registration: %w", err)
		}
		return nil
	})
}

// ListUsers returns all user records.
func (s *BoltStore) ListUsers() ([]*UserInfo, error) {
	var users []*UserInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketUsers).ForEach(func(k, v []byte) error {
			info, err := DeserializeUser(v)
			if err != nil {
				return fmt.Errorf("boltstore: decode user in list: %w", err)
			}
			users = append(users, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
