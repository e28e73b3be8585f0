// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formbox/formbox/internal/auth"
	"github.com/formbox/formbox/internal/metrics"
	"github.com/formbox/formbox/internal/model"
	"github.com/formbox/formbox/internal/store"
)

// ErrDuplicateUser is returned when the email is already registered.
var ErrDuplicateUser = errors.New("user already exists")

// CredentialService creates users and resolves identity by API key.
type CredentialService struct {
	identity *store.IdentityStore
	metrics  metrics.Recorder
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(identity *store.IdentityStore, recorder metrics.Recorder) *CredentialService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CredentialService{
		identity: identity,
		metrics:  recorder,
	}
}

// CreateUser registers a new identity: it hashes the password, mints a
// fresh API key and stores the record. The returned summary is the only
// place the key is ever handed out; the password hash never leaves the
// store. Returns ErrDuplicateUser when the email is taken.
func (s *CredentialService) CreateUser(ctx context.Context, email, password string) (*model.UserSummary, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	key, err := auth.GenerateAPIKey()
	if err != nil {
		return nil, fmt.Errorf("generate api key: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		APIKey:       key,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.identity.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	s.metrics.IncUserCreated()

	summary := user.Summary()
	return &summary, nil
}

// ResolveByAPIKey returns the user owning the presented key, or
// store.ErrUserNotFound. Pure lookup, no side effects.
func (s *CredentialService) ResolveByAPIKey(ctx context.Context, key string) (*model.User, error) {
	return s.identity.GetUserByAPIKey(key)
}

// VerifyPassword reports whether the password matches the stored hash
// for the given email. Unknown emails and malformed hashes verify as
// false.
func (s *CredentialService) VerifyPassword(ctx context.Context, email, password string) bool {
	user, err := s.identity.GetUserByEmail(email)
	if err != nil {
		return false
	}
	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	return err == nil && ok
}
