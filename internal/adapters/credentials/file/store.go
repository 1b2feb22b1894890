package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/bnema/todo-tasks-cli/internal/ports"
)

const (
	storeDirMode       = 0o700
	credentialFileMode = 0o600

	tokenFileName = "auth_token"
	userFileName  = "user_data"
)

// Store persists the bearer token and the user record as two files
// under a private directory: auth_token holds the raw token string,
// user_data the JSON-encoded record. Absence of a file means absence
// of that credential.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Token(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read stored token: %w", err)
	}

	token := string(data)
	if token == "" {
		return "", false, nil
	}

	return token, true, nil
}

// SetToken stores the token. An empty token is a no-op so a stored
// credential is never overwritten with nothing.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeFile(s.tokenPath(), []byte(token), "token")
}

func (s *Store) ClearToken(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeFile(s.tokenPath(), "token")
}

func (s *Store) User(ctx context.Context) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.userPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read stored user data: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false, &domain.DeserializationError{Key: userFileName, Err: err}
	}

	if user.IsZero() {
		return nil, false, nil
	}

	return user, true, nil
}

// SetUser stores the user record as JSON. An empty record is a no-op.
func (s *Store) SetUser(ctx context.Context, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user.IsZero() {
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeFile(s.userPath(), data, "user data")
}

// ClearAll removes both credentials under one lock so no reader can
// observe a half-cleared pair.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.removeFile(s.tokenPath(), "token"); err != nil {
		return err
	}

	return s.removeFile(s.userPath(), "user data")
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.root, tokenFileName)
}

func (s *Store) userPath() string {
	return filepath.Join(s.root, userFileName)
}

func (s *Store) writeFile(path string, data []byte, label string) error {
	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	if err := os.WriteFile(path, data, credentialFileMode); err != nil {
		return fmt.Errorf("write stored %s: %w", label, err)
	}

	return nil
}

func (s *Store) removeFile(path, label string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear stored %s: %w", label, err)
	}

	return nil
}
