// Package session holds the authentication state of the client and keeps it
// in sync with the persisted key-value store.
//
// The store has three states: unknown until [Store.RestoreSession] runs,
// then authenticated or unauthenticated. Only Login and Logout move between
// the last two. Restore and logout are fail-safe and never return an error;
// login surfaces persistence failures so the caller can show them.
//
// Login and Logout are not serialized against each other. Callers must not
// trigger them concurrently; the login screen disables its submit action
// while a sign-in is in flight.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/store"
	"github.com/MKhiriev/nurse-notes/internal/validators"
	"github.com/MKhiriev/nurse-notes/models"
)

// Store is the auth session store.
type Store struct {
	kv        store.KeyValueStore
	validator validators.Validator
	logger    *logger.Logger

	mu    sync.RWMutex
	state Snapshot
	token string
}

// NewStore returns a store in the unknown state.
func NewStore(kv store.KeyValueStore, logger *logger.Logger) *Store {
	return &Store{
		kv:        kv,
		validator: validators.NewAccountValidator(),
		logger:    logger,
		state:     unknown(),
	}
}

// RestoreSession hydrates the store. The session is authenticated only when
// a non-empty token and a user object with an id are both persisted; any
// other combination, a decode failure, or a read failure leaves it
// unauthenticated.
func (s *Store) RestoreSession(ctx context.Context) Snapshot {
	token, user, ok := s.readPersisted(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok {
		s.state = authenticated(user)
		s.token = token
	} else {
		s.state = unauthenticated()
		s.token = ""
	}

	return s.state
}

func (s *Store) readPersisted(ctx context.Context) (string, models.UserProfile, bool) {
	log := s.logger.With().Str("func", "*Store.RestoreSession").Logger()

	token, tokenFound, err := s.kv.Get(ctx, store.KeyAuthToken)
	if err != nil {
		log.Warn().Err(err).Msg("error reading auth token")
		return "", models.UserProfile{}, false
	}

	rawUser, userFound, err := s.kv.Get(ctx, store.KeyAuthUser)
	if err != nil {
		log.Warn().Err(err).Msg("error reading auth user")
		return "", models.UserProfile{}, false
	}

	if !tokenFound || !userFound || token == "" {
		if tokenFound != userFound {
			log.Warn().Bool("token", tokenFound).Bool("user", userFound).Msg("partial session record")
		}
		return "", models.UserProfile{}, false
	}

	var user *models.UserProfile
	if err = json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.Warn().Err(err).Msg("error decoding auth user")
		return "", models.UserProfile{}, false
	}
	if user == nil {
		log.Warn().Msg("persisted auth user is null")
		return "", models.UserProfile{}, false
	}
	if err = s.validator.Validate(ctx, *user); err != nil {
		log.Warn().Err(err).Msg("persisted auth user rejected")
		return "", models.UserProfile{}, false
	}

	return token, *user, true
}

// Login persists token and user, then marks the session authenticated.
//
// If either write fails the session is left unauthenticated and the error
// wraps [ErrPersistSession]. A partially written record is not rolled back;
// RestoreSession treats it as unauthenticated.
func (s *Store) Login(ctx context.Context, token string, user models.UserProfile) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return s.failLogin(fmt.Errorf("%w: encode user: %w", ErrPersistSession, err))
	}

	if err = s.kv.Set(ctx, store.KeyAuthToken, token); err != nil {
		return s.failLogin(fmt.Errorf("%w: %w", ErrPersistSession, err))
	}

	if err = s.kv.Set(ctx, store.KeyAuthUser, string(rawUser)); err != nil {
		return s.failLogin(fmt.Errorf("%w: %w", ErrPersistSession, err))
	}

	s.mu.Lock()
	s.state = authenticated(user)
	s.token = token
	s.mu.Unlock()

	return nil
}

func (s *Store) failLogin(err error) error {
	s.logger.Err(err).Str("func", "*Store.Login").Msg("error persisting session")

	s.mu.Lock()
	s.state = unauthenticated()
	s.token = ""
	s.mu.Unlock()

	return err
}

// Logout removes both persisted entries and marks the session
// unauthenticated. Removal failures are logged; Logout always returns nil.
func (s *Store) Logout(ctx context.Context) error {
	for _, key := range []string{store.KeyAuthToken, store.KeyAuthUser} {
		if err := s.kv.Remove(ctx, key); err != nil {
			s.logger.Warn().Err(err).Str("func", "*Store.Logout").Str("key", key).Msg("error removing session key")
		}
	}

	s.mu.Lock()
	s.state = unauthenticated()
	s.token = ""
	s.mu.Unlock()

	return nil
}

// UpdateUser replaces the profile of the authenticated session, in memory
// and in the persisted record. The profile must carry the session user's id.
// On a write failure the in-memory profile is left unchanged.
func (s *Store) UpdateUser(ctx context.Context, user models.UserProfile) error {
	current := s.Snapshot()
	if current.State != StateAuthenticated {
		return ErrNotAuthenticated
	}
	if err := s.validator.Validate(ctx, user); err != nil {
		return err
	}
	if user.ID != current.User.ID {
		return ErrUserMismatch
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encode user: %w", ErrPersistSession, err)
	}
	if err = s.kv.Set(ctx, store.KeyAuthUser, string(rawUser)); err != nil {
		s.logger.Err(err).Str("func", "*Store.UpdateUser").Msg("error persisting user")
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a logout may have happened while writing
	if s.state.State == StateAuthenticated {
		s.state = authenticated(user)
	}

	return nil
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the bearer token of an authenticated session, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
