package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionInitializeWithStoredPairAuthenticates(t *testing.T) {
	store := &fakeCredentialStore{
		token:    "abc",
		hasToken: true,
		user:     domain.User{"name": "Ada"},
		hasUser:  true,
	}
	service := NewSessionService(store, nil)

	session := service.Initialize(context.Background())

	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "abc", session.Token)
	assert.Equal(t, "Ada", session.User.Name())
	assert.False(t, session.Loading)
	assert.Empty(t, session.Error)
}

func TestSessionInitializePartialCredentialsStayUnauthenticated(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeCredentialStore
	}{
		{name: "token without user", store: &fakeCredentialStore{token: "abc", hasToken: true}},
		{name: "user without token", store: &fakeCredentialStore{user: domain.User{"name": "Ada"}, hasUser: true}},
		{name: "nothing stored", store: &fakeCredentialStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSessionService(tt.store, nil)

			session := service.Initialize(context.Background())

			assert.Equal(t, domain.SessionUnauthenticated, session.State)
			assert.False(t, session.IsAuthenticated())
			assert.False(t, session.Loading)
		})
	}
}

func TestSessionInitializeMalformedUserDataIsTreatedAsAbsent(t *testing.T) {
	var jsonErr error = &json.SyntaxError{}
	store := &fakeCredentialStore{
		token:    "abc",
		hasToken: true,
		userErr:  &domain.DeserializationError{Key: "user_data", Err: jsonErr},
	}
	service := NewSessionService(store, nil)

	session := service.Initialize(context.Background())

	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.Loading)
	assert.Empty(t, session.Error)
}

func TestSessionInitializeStoreFailureResolvesLoadingWithError(t *testing.T) {
	store := &fakeCredentialStore{tokenErr: errors.New("disk gone")}
	service := NewSessionService(store, nil)

	session := service.Initialize(context.Background())

	assert.Equal(t, domain.SessionUnauthenticated, session.State)
	assert.False(t, session.Loading)
	assert.NotEmpty(t, session.Error)
}

func TestSessionInitializeRunsOnce(t *testing.T) {
	store := &fakeCredentialStore{}
	service := NewSessionService(store, nil)

	service.Initialize(context.Background())

	// A token appearing after the first pass is not picked up.
	store.token = "late"
	store.hasToken = true
	store.user = domain.User{"name": "Ada"}
	store.hasUser = true

	session := service.Initialize(context.Background())
	assert.False(t, session.IsAuthenticated())
}

func TestSessionInitializeFirstCallResolvesLoading(t *testing.T) {
	service := NewSessionService(&fakeCredentialStore{}, nil)
	require.True(t, service.Snapshot().Loading)

	// The snapshot returned by the first pass itself reports loading
	// resolved; callers never see an in-between state.
	session := service.Initialize(context.Background())
	assert.False(t, session.Loading)
}

func TestSessionLoginEmptyTokenFails(t *testing.T) {
	store := &fakeCredentialStore{}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())

	ok := service.Login(context.Background(), "", domain.User{"name": "Ada"})

	assert.False(t, ok)
	assert.False(t, service.Snapshot().IsAuthenticated())
	assert.Empty(t, service.Snapshot().Error)
}

func TestSessionLoginThenLogoutClearsStoredPair(t *testing.T) {
	store := &fakeCredentialStore{}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())

	require.True(t, service.Login(context.Background(), "token-1", domain.User{"name": "Ada"}))
	assert.True(t, service.Snapshot().IsAuthenticated())
	assert.True(t, store.hasToken)
	assert.True(t, store.hasUser)

	require.True(t, service.Logout(context.Background()))
	session := service.Snapshot()

	assert.Equal(t, domain.SessionUnauthenticated, session.State)
	assert.Empty(t, session.Token)
	assert.True(t, session.User.IsZero())
	assert.False(t, store.hasToken)
	assert.False(t, store.hasUser)

	// Logout is idempotent.
	assert.True(t, service.Logout(context.Background()))
}

func TestSessionLoginRollsBackTokenWhenUserWriteFails(t *testing.T) {
	store := &fakeCredentialStore{setUserErr: errors.New("disk full")}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())

	ok := service.Login(context.Background(), "token-1", domain.User{"name": "Ada"})

	assert.False(t, ok)
	assert.False(t, service.Snapshot().IsAuthenticated())
	assert.NotEmpty(t, service.Snapshot().Error)
	assert.False(t, store.hasToken)
	assert.Equal(t, 1, store.clearTokenCalls)
}

func TestSessionLoginClearsPreviousError(t *testing.T) {
	store := &fakeCredentialStore{clearAllErr: errors.New("disk gone")}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())

	require.False(t, service.Logout(context.Background()))
	require.NotEmpty(t, service.Snapshot().Error)

	store.clearAllErr = nil
	require.True(t, service.Login(context.Background(), "token-1", domain.User{"name": "Ada"}))
	assert.Empty(t, service.Snapshot().Error)
}

func TestSessionLogoutFailureSetsErrorAndKeepsState(t *testing.T) {
	store := &fakeCredentialStore{}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())
	require.True(t, service.Login(context.Background(), "token-1", domain.User{"name": "Ada"}))

	store.clearAllErr = errors.New("disk gone")
	ok := service.Logout(context.Background())

	assert.False(t, ok)
	assert.NotEmpty(t, service.Snapshot().Error)
	assert.True(t, service.Snapshot().IsAuthenticated())
}

func TestSessionUpdateUserKeepsToken(t *testing.T) {
	store := &fakeCredentialStore{}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())
	require.True(t, service.Login(context.Background(), "token-1", domain.User{"name": "Ada"}))

	ok := service.UpdateUser(context.Background(), domain.User{"name": "Grace", "setup_complete": true})

	require.True(t, ok)
	session := service.Snapshot()
	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, "Grace", session.User.Name())
	assert.Equal(t, "Grace", store.user.Name())
	assert.Equal(t, "token-1", store.token)
}

func TestSessionUpdateUserWhileUnauthenticatedIsRejected(t *testing.T) {
	store := &fakeCredentialStore{}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())

	assert.False(t, service.UpdateUser(context.Background(), domain.User{"name": "Ada"}))
	assert.False(t, store.hasUser)
}

func TestSessionClearError(t *testing.T) {
	store := &fakeCredentialStore{tokenErr: errors.New("disk gone")}
	service := NewSessionService(store, nil)
	service.Initialize(context.Background())
	require.NotEmpty(t, service.Snapshot().Error)

	service.ClearError()

	assert.Empty(t, service.Snapshot().Error)
}

func TestSessionRequireAuthenticated(t *testing.T) {
	store := &fakeCredentialStore{}
	service := NewSessionService(store, nil)

	err := service.RequireAuthenticated()
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	service.Initialize(context.Background())
	err = service.RequireAuthenticated()
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	require.True(t, service.Login(context.Background(), "token-1", domain.User{"name": "Ada"}))
	assert.NoError(t, service.RequireAuthenticated())
}
