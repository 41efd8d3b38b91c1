// Package session holds the client's authentication state: the bearer token
// issued by the backend and the derived authenticated flag. The token is
// persisted through a TokenStore so a restart picks the session back up.
package session

import (
	"sync"

	"github.com/stamptrail/stampbook/internal/logger"
)

// TokenStore is the durable slot the session token lives in between runs.
type TokenStore interface {
	// Load returns the stored token, or "" if none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Store tracks the current session. It is passed explicitly to consumers
// rather than living in a package-level singleton so tests can inject a
// fake TokenStore.
type Store struct {
	mu          sync.Mutex
	tokens      TokenStore
	token       string
	initialized bool
}

// NewStore creates a session store backed by the given token store. No
// restore happens until Initialize is called.
func NewStore(tokens TokenStore) *Store {
	return &Store{tokens: tokens}
}

// Initialize restores a previously saved token, if any. It is idempotent:
// only the first call reads the store, later calls are no-ops. A failed read
// is treated as "no session", never as a fatal condition, and the store is
// marked initialized regardless.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}

	token, err := s.tokens.Load()
	if err != nil {
		logger.Warn("Failed to restore session token", logger.F("error", err))
	} else {
		s.token = token
	}
	s.initialized = true
}

// Login records a freshly issued token and persists it durably. Called by
// the auth flow after the backend accepts the credentials; the store itself
// never talks to the network.
func (s *Store) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	return s.tokens.Save(token)
}

// Logout clears the session in memory and on disk.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return s.tokens.Clear()
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Initialized reports whether the initial restore attempt has completed.
// It moves false to true exactly once and never reverts.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}
