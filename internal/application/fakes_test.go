package application

import (
	"context"

	"github.com/bnema/todo-tasks-cli/internal/domain"
)

// fakeCredentialStore is an in-memory ports.CredentialStore with
// per-operation error injection.
type fakeCredentialStore struct {
	token    string
	hasToken bool
	user     domain.User
	hasUser  bool

	tokenErr    error
	setTokenErr error
	userErr     error
	setUserErr  error
	clearAllErr error

	clearTokenCalls int
}

func (f *fakeCredentialStore) Token(context.Context) (string, bool, error) {
	if f.tokenErr != nil {
		return "", false, f.tokenErr
	}
	return f.token, f.hasToken, nil
}

func (f *fakeCredentialStore) SetToken(_ context.Context, token string) error {
	if f.setTokenErr != nil {
		return f.setTokenErr
	}
	if token == "" {
		return nil
	}
	f.token = token
	f.hasToken = true
	return nil
}

func (f *fakeCredentialStore) ClearToken(context.Context) error {
	f.clearTokenCalls++
	f.token = ""
	f.hasToken = false
	return nil
}

func (f *fakeCredentialStore) User(context.Context) (domain.User, bool, error) {
	if f.userErr != nil {
		return nil, false, f.userErr
	}
	return f.user, f.hasUser, nil
}

func (f *fakeCredentialStore) SetUser(_ context.Context, user domain.User) error {
	if f.setUserErr != nil {
		return f.setUserErr
	}
	if user.IsZero() {
		return nil
	}
	f.user = user.Clone()
	f.hasUser = true
	return nil
}

func (f *fakeCredentialStore) ClearAll(context.Context) error {
	if f.clearAllErr != nil {
		return f.clearAllErr
	}
	f.token = ""
	f.hasToken = false
	f.user = nil
	f.hasUser = false
	return nil
}

// fakeTaskRepository keeps snapshots in memory.
type fakeTaskRepository struct {
	tasks   []domain.Task
	loadErr error
	saveErr error

	saveCalls int
}

func (f *fakeTaskRepository) Load(context.Context) ([]domain.Task, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	snapshot := make([]domain.Task, len(f.tasks))
	copy(snapshot, f.tasks)
	return snapshot, nil
}

func (f *fakeTaskRepository) Save(_ context.Context, tasks []domain.Task) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.tasks = make([]domain.Task, len(tasks))
	copy(f.tasks, tasks)
	return nil
}

// fakeTodoGateway records calls and serves canned responses.
type fakeTodoGateway struct {
	listTasks []domain.Task
	listErr   error

	batchIn  []domain.Task
	batchOut []domain.Task
	batchErr error

	updateID    domain.TaskID
	updatePatch domain.TaskPatch
	updateErr   error
}

func (f *fakeTodoGateway) List(context.Context) ([]domain.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listTasks, nil
}

func (f *fakeTodoGateway) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	return task, nil
}

func (f *fakeTodoGateway) Update(_ context.Context, id domain.TaskID, patch domain.TaskPatch) (domain.Task, error) {
	f.updateID = id
	f.updatePatch = patch
	if f.updateErr != nil {
		return domain.Task{}, f.updateErr
	}
	return patch.Apply(domain.Task{ID: id, Text: "remote"}), nil
}

func (f *fakeTodoGateway) Delete(context.Context, domain.TaskID) error {
	return nil
}

func (f *fakeTodoGateway) CreateBatch(_ context.Context, tasks []domain.Task) ([]domain.Task, error) {
	f.batchIn = tasks
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return f.batchOut, nil
}
