package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/bnema/todo-tasks-cli/internal/ports"
)

// SessionService owns the authentication state machine:
// Initializing -> {Authenticated, Unauthenticated}, then
// Authenticated <-> Unauthenticated via login/logout. The credential
// store holds the persisted copies; the service holds the in-memory
// truth and keeps the two in step.
type SessionService struct {
	store  ports.CredentialStore
	logger *slog.Logger

	initialized bool
	state       domain.SessionState
	token       string
	user        domain.User
	errMsg      string
}

func NewSessionService(store ports.CredentialStore, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionService{
		store:  store,
		logger: logger,
		state:  domain.SessionInitializing,
	}
}

// Initialize restores the session from the credential store in a
// single pass. It never retries and always resolves loading; partial
// credentials (token without user, or the reverse) resolve to
// Unauthenticated. Repeated calls return the settled snapshot.
func (s *SessionService) Initialize(ctx context.Context) domain.Session {
	if s.initialized {
		return s.Snapshot()
	}

	// Settle before taking any snapshot: every return below, including
	// the failure paths, reports loading resolved.
	s.initialized = true
	s.state = domain.SessionUnauthenticated

	token, hasToken, err := s.store.Token(ctx)
	if err != nil {
		s.errMsg = "failed to restore authentication"
		s.logger.Error("restore stored token", "error", err)
		return s.Snapshot()
	}

	user, hasUser, err := s.store.User(ctx)
	if err != nil {
		var deserr *domain.DeserializationError
		if errors.As(err, &deserr) {
			// Treat as no stored user; the token alone never
			// counts as authenticated.
			s.logger.Warn("stored user data is malformed, ignoring it", "error", err)
			hasUser = false
		} else {
			s.errMsg = "failed to restore authentication"
			s.logger.Error("restore stored user", "error", err)
			return s.Snapshot()
		}
	}

	if hasToken && hasUser {
		s.state = domain.SessionAuthenticated
		s.token = token
		s.user = user
	}

	return s.Snapshot()
}

// Login persists the token and user record, then flips the in-memory
// state. An empty token or empty user record is rejected locally. If
// either store write fails the in-memory state stays put: a token
// persisted before a failing user write is rolled back so the pair
// changes all-or-nothing.
func (s *SessionService) Login(ctx context.Context, token string, user domain.User) bool {
	if token == "" || user.IsZero() {
		return false
	}

	if err := s.store.SetToken(ctx, token); err != nil {
		s.errMsg = "failed to log in"
		s.logger.Error("persist token", "error", err)
		return false
	}

	if err := s.store.SetUser(ctx, user); err != nil {
		s.errMsg = "failed to log in"
		s.logger.Error("persist user record", "error", err)
		if rollbackErr := s.store.ClearToken(ctx); rollbackErr != nil {
			s.logger.Error("roll back persisted token", "error", rollbackErr)
		}
		return false
	}

	s.state = domain.SessionAuthenticated
	s.token = token
	s.user = user.Clone()
	s.errMsg = ""

	return true
}

// Logout clears the persisted pair and the in-memory fields together.
// It is best-effort idempotent: repeated calls are safe, and a storage
// failure only sets the session error.
func (s *SessionService) Logout(ctx context.Context) bool {
	if err := s.store.ClearAll(ctx); err != nil {
		s.errMsg = "failed to log out"
		s.logger.Error("clear stored credentials", "error", err)
		return false
	}

	s.state = domain.SessionUnauthenticated
	s.token = ""
	s.user = nil
	s.errMsg = ""

	return true
}

// UpdateUser replaces the user record without touching the token.
// Only meaningful while authenticated.
func (s *SessionService) UpdateUser(ctx context.Context, user domain.User) bool {
	if s.state != domain.SessionAuthenticated || user.IsZero() {
		return false
	}

	if err := s.store.SetUser(ctx, user); err != nil {
		s.errMsg = "failed to update user data"
		s.logger.Error("persist user record", "error", err)
		return false
	}

	s.user = user.Clone()
	s.errMsg = ""

	return true
}

func (s *SessionService) ClearError() {
	s.errMsg = ""
}

func (s *SessionService) Snapshot() domain.Session {
	return domain.Session{
		State:   s.state,
		Token:   s.token,
		User:    s.user.Clone(),
		Loading: !s.initialized,
		Error:   s.errMsg,
	}
}

// RequireAuthenticated is the gate for operations that need a live
// session; it insists Initialize has settled first.
func (s *SessionService) RequireAuthenticated() error {
	if !s.initialized {
		return fmt.Errorf("session not initialized: %w", domain.ErrNotAuthenticated)
	}
	if s.state != domain.SessionAuthenticated {
		return domain.ErrNotAuthenticated
	}
	return nil
}
