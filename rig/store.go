package rig

import (
	"fmt"
	"sync"

	"github.com/rigshare/librigshare-go/identity"
)

// Store persists ledger records keyed by address. Implementations must
// return copies; callers never see internal pointers.
type Store interface {
	// PutRegistration stores or overwrites the registration record for
	// its operator.
	PutRegistration(info *RegistrationInfo) error

	// GetRegistration retrieves the registration record for an operator.
	GetRegistration(operator identity.Address) (*RegistrationInfo, error)

	// PutUser stores or overwrites the user record for its address.
	PutUser(info *UserInfo) error

	// GetUser retrieves the user record for a buyer address.
	GetUser(addr identity.Address) (*UserInfo, error)

	// PutUserAndRegistration stores both records atomically. Purchases
	// and claims update one of each; a crash must not persist half.
	PutUserAndRegistration(user *UserInfo, reg *RegistrationInfo) error

	// ListUsers returns all user records (for audit/export).
	ListUsers() ([]*UserInfo, error)
}

// MemStore is an in-memory implementation of Store for tests and
// ephemeral deployments.
type MemStore struct {
	mu            sync.RWMutex
	registrations map[identity.Address]RegistrationInfo
	users         map[identity.Address]UserInfo
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates a new empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		registrations: make(map[identity.Address]RegistrationInfo),
		users:         make(map[identity.Address]UserInfo),
	}
}

// PutRegistration stores or overwrites the registration record.
func (s *MemStore) PutRegistration(info *RegistrationInfo) error {
	if info == nil {
		return fmt.Errorf("%w: registration", ErrNilParam)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrations[info.Operator] = *info
	return nil
}

// GetRegistration retrieves the registration record for an operator.
func (s *MemStore) GetRegistration(operator identity.Address) (*RegistrationInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.registrations[operator]
	if !ok {
		return nil, ErrRegistrationNotFound
	}
	return &info, nil
}

// PutUser stores or overwrites the user record.
func (s *MemStore) PutUser(info *UserInfo) error {
	if info == nil {
		return fmt.Errorf("%w: user", ErrNilParam)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[info.Address] = *info
	return nil
}

// GetUser retrieves the user record for a buyer address.
func (s *MemStore) GetUser(addr identity.Address) (*UserInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.users[addr]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &info, nil
}

// PutUserAndRegistration stores both records atomically.
func (s *MemStore) PutUserAndRegistration(user *UserInfo, reg *RegistrationInfo) error {
	if user == nil || reg == nil {
		return fmt.Errorf("%w: user and registration", ErrNilParam)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Address] = *user
	s.registrations[reg.Operator] = *reg
	return nil
}

// ListUsers returns all user records.
func (s *MemStore) ListUsers() ([]*UserInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*UserInfo, 0, len(s.users))
	for _, info := range s.users {
		u := info
		out = append(out, &u)
	}
	return out, nil
}
