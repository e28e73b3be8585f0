package store

import (
	"errors"
	"sync"

	"github.com/formbox/formbox/internal/model"
)

// Common errors for identity store operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

// IdentityStore holds user records keyed by email plus a secondary
// index from API key to email. Every stored user has exactly one live
// API key and every indexed key maps to an existing user.
type IdentityStore struct {
	mu      sync.RWMutex
	users   map[string]*model.User // email -> user
	apiKeys map[string]string      // api key -> email
}

// NewIdentityStore creates an empty IdentityStore.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		users:   make(map[string]*model.User),
		apiKeys: make(map[string]string),
	}
}

// CreateUser inserts the user and indexes its API key atomically.
// Returns ErrEmailExists when the email is already taken.
func (s *IdentityStore) CreateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrEmailExists
	}

	stored := *user
	s.users[user.Email] = &stored
	s.apiKeys[user.APIKey] = user.Email
	return nil
}

// GetUserByEmail returns a copy of the user record, or ErrUserNotFound.
func (s *IdentityStore) GetUserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// GetUserByAPIKey resolves the key through the secondary index and
// returns a copy of the owning user record, or ErrUserNotFound.
func (s *IdentityStore) GetUserByAPIKey(key string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.apiKeys[key]
	if !ok {
		return nil, ErrUserNotFound
	}
	user, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// Counts returns the number of stored users and indexed API keys.
func (s *IdentityStore) Counts() (users, apiKeys int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.apiKeys)
}

// Clear removes all users and API keys.
func (s *IdentityStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]*model.User)
	s.apiKeys = make(map[string]string)
}
