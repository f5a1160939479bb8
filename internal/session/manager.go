// Package session derives authentication state from the stored credential.
// The Manager is the single gateway to the credential store: everything else
// asks the Manager, nothing else touches storage.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillshare/skilladmin/internal/credstore"
	"github.com/skillshare/skilladmin/internal/logging"
	"github.com/skillshare/skilladmin/internal/models"
	"github.com/skillshare/skilladmin/internal/shared"
)

// Claims are the identity assertions carried by the session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Manager holds the derived session state. State changes only at explicit
// boundaries: Refresh at startup, SetToken on login, Clear on logout. There
// is no background polling and no token refresh; a decode failure is terminal
// for the session until a new login completes.
type Manager struct {
	store  credstore.Store
	logger logging.Logger

	mu            sync.RWMutex
	token         string
	authenticated bool
	identity      models.Identity
}

func NewManager(store credstore.Store, logger logging.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Refresh re-derives authentication state from the credential store.
// A token that fails to decode is destroyed and the session downgrades to
// unauthenticated; that is a recoverable condition, not an error. Only
// storage failures are returned.
func (m *Manager) Refresh(ctx context.Context) error {
	token, err := m.store.Get(ctx)
	if err != nil {
		m.reset()
		return fmt.Errorf("reading credential: %w", err)
	}
	if token == "" {
		m.reset()
		return nil
	}

	identity, err := decode(token)
	if err != nil {
		m.logger.Warn(ctx, "session token rejected", "reason", err.Error())
		m.reset()
		if err := m.store.Clear(ctx); err != nil {
			return fmt.Errorf("clearing rejected credential: %w", err)
		}
		return nil
	}

	m.mu.Lock()
	m.token = token
	m.authenticated = true
	m.identity = identity
	m.mu.Unlock()
	return nil
}

// SetToken stores a freshly issued token and re-derives session state.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	if err := m.store.Set(ctx, token); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return m.Refresh(ctx)
}

// Clear destroys the stored credential and downgrades to unauthenticated.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	m.reset()
	return nil
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authenticated
}

// CurrentIdentity returns the decoded identity; ok is false when the session
// is unauthenticated.
func (m *Manager) CurrentIdentity() (models.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity, m.authenticated
}

// Token returns the raw session token for outgoing requests, or "" when
// unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) reset() {
	m.mu.Lock()
	m.token = ""
	m.authenticated = false
	m.identity = models.Identity{}
	m.mu.Unlock()
}

// decode extracts identity claims from the token. The token is signed by the
// backend; the client has no verification key and, like the original web
// client, trusts its own storage and decodes claims unverified. An exp claim,
// when present, is still enforced.
func decode(raw string) (models.Identity, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", shared.ErrTokenInvalid, err)
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return models.Identity{}, fmt.Errorf("%w: expired", shared.ErrTokenInvalid)
	}
	return models.Identity{UserID: claims.UserID, Name: claims.Name}, nil
}
