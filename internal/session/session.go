// Package session implements the local user registry and the per-profile
// login session.
//
// The registry is a single list of accounts shared by every profile. Each
// browser profile holds at most one signed-in user; the stored session
// record never carries the password hash.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/artspace/internal/cryptox"
	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/storage"
	"github.com/dmitrijs2005/artspace/internal/validator"
	"github.com/google/uuid"
)

// Manager owns the registry and vends a Store per browser profile.
type Manager struct {
	store  storage.Store
	users  *storage.Slot[[]domain.Account]
	logger logging.Logger

	now            func() time.Time
	newID          func() string
	hashPassword   func(string) (string, error)
	verifyPassword func(password, encoded string) bool
}

func NewManager(store storage.Store, logger logging.Logger) *Manager {
	return &Manager{
		store:          store,
		users:          storage.NewSlot[[]domain.Account](store, storage.KeyUsers, nil, logger),
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          func() string { return uuid.NewString() },
		hashPassword:   cryptox.HashPassword,
		verifyPassword: cryptox.VerifyPassword,
	}
}

// For returns the session of one browser profile.
func (m *Manager) For(profile string) *Store {
	return &Store{
		m:       m,
		profile: profile,
		current: storage.NewSlot[*domain.User](m.store, storage.CurrentUserKey(profile), nil, m.logger),
	}
}

// Store is the session of one browser profile.
type Store struct {
	m       *Manager
	profile string
	current *storage.Slot[*domain.User]
}

// Current returns the signed-in user, or nil when the profile is anonymous.
func (s *Store) Current(ctx context.Context) *domain.User {
	return s.current.Get(ctx)
}

// Register creates an account and signs it in. Username uniqueness is
// checked before email uniqueness.
func (s *Store) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validator.ValidateRegister(username, email, password).Err(); err != nil {
		return nil, err
	}

	hash, err := s.m.hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acc := domain.Account{
		User: domain.User{
			ID:        s.m.newID(),
			Username:  username,
			Email:     email,
			CreatedAt: s.m.now(),
		},
		PasswordHash: hash,
	}

	err = s.m.users.Update(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		for _, a := range accounts {
			if a.Username == username {
				return nil, domain.ErrDuplicateUsername
			}
		}
		for _, a := range accounts {
			if a.Email == email {
				return nil, domain.ErrDuplicateEmail
			}
		}
		return append(accounts, acc), nil
	})
	if err != nil {
		return nil, err
	}

	u := acc.User
	s.current.Set(ctx, &u)
	s.m.logger.Info(ctx, "user registered", "user_id", u.ID, "profile", s.profile)
	return &u, nil
}

// Login signs in the account with an exact username match and a matching
// password. On failure the current session is left as it was.
func (s *Store) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	// blank fields fail like any other mismatch
	if validator.ValidateLogin(username, password).HasErrors() {
		return nil, domain.ErrInvalidCredentials
	}

	for _, a := range s.m.users.Get(ctx) {
		if a.Username != username {
			continue
		}
		if !s.m.verifyPassword(password, a.PasswordHash) {
			break
		}
		u := a.User
		s.current.Set(ctx, &u)
		s.m.logger.Info(ctx, "user logged in", "user_id", u.ID, "profile", s.profile)
		return &u, nil
	}

	return nil, domain.ErrInvalidCredentials
}

// Logout clears the session whether or not anyone is signed in.
func (s *Store) Logout(ctx context.Context) {
	s.current.Clear(ctx)
}
