package ports

import (
	"context"

	"github.com/bnema/todo-tasks-cli/internal/domain"
)

// CredentialStore is the persistence boundary for the bearer token and
// the user record. Setting an empty token or a nil user is a no-op;
// clears are idempotent. Malformed stored user data surfaces as a
// *domain.DeserializationError.
type CredentialStore interface {
	Token(ctx context.Context) (string, bool, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
	User(ctx context.Context) (domain.User, bool, error)
	SetUser(ctx context.Context, user domain.User) error
	ClearAll(ctx context.Context) error
}
