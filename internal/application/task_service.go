package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/bnema/todo-tasks-cli/internal/ports"
)

// TaskService fronts the in-memory task list with a local snapshot
// repository and the remote gateway. Sync policy is on-demand only:
// mutations touch memory and the local snapshot, the remote collection
// moves only through explicit Pull/Push, so server writes are never
// duplicated by implicit per-mutation calls.
type TaskService struct {
	list    *domain.TaskList
	repo    ports.TaskRepository
	gateway ports.TodoGateway
	logger  *slog.Logger
}

func NewTaskService(repo ports.TaskRepository, gateway ports.TodoGateway, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		list:    domain.NewTaskList(),
		repo:    repo,
		gateway: gateway,
		logger:  logger,
	}
}

// Load restores the task collection from the local snapshot. A missing
// snapshot is an empty list.
func (s *TaskService) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load task snapshot: %w", err)
	}

	s.list.Replace(tasks)
	return nil
}

// Add appends a task. Blank text is a silent no-op reporting ok=false.
func (s *TaskService) Add(ctx context.Context, text string) (domain.Task, bool, error) {
	prev := s.list.Tasks()

	task, ok := s.list.Add(text)
	if !ok {
		return domain.Task{}, false, nil
	}

	if err := s.persist(ctx, prev); err != nil {
		return domain.Task{}, false, err
	}

	return task, true, nil
}

// Toggle flips completion on the task; unknown ids report ok=false.
func (s *TaskService) Toggle(ctx context.Context, id domain.TaskID) (bool, error) {
	prev := s.list.Tasks()

	if !s.list.Toggle(id) {
		return false, nil
	}

	if err := s.persist(ctx, prev); err != nil {
		return false, err
	}

	return true, nil
}

// Remove deletes the task; unknown ids report ok=false.
func (s *TaskService) Remove(ctx context.Context, id domain.TaskID) (bool, error) {
	prev := s.list.Tasks()

	if !s.list.Delete(id) {
		return false, nil
	}

	if err := s.persist(ctx, prev); err != nil {
		return false, err
	}

	return true, nil
}

// Edit replaces the task's text through the edit-draft cycle. Unknown
// ids and blank replacement text are silent no-ops reporting ok=false.
func (s *TaskService) Edit(ctx context.Context, id domain.TaskID, text string) (bool, error) {
	task, found := s.list.Get(id)
	if !found {
		return false, nil
	}

	prev := s.list.Tasks()

	s.list.BeginEdit(id, task.Text)
	s.list.SetEditText(text)
	if !s.list.SaveEdit(id) {
		s.list.CancelEdit()
		return false, nil
	}

	if err := s.persist(ctx, prev); err != nil {
		return false, err
	}

	return true, nil
}

// Pull replaces the local collection with the remote one.
func (s *TaskService) Pull(ctx context.Context) ([]domain.Task, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("no remote gateway configured")
	}

	remote, err := s.gateway.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("pull remote tasks: %w", err)
	}

	prev := s.list.Tasks()
	s.list.Replace(remote)

	if err := s.persist(ctx, prev); err != nil {
		return nil, err
	}

	return s.list.Tasks(), nil
}

// Push batch-creates the local collection remotely. The local list is
// left untouched; the created tasks (with server-assigned ids) are
// returned for the caller to inspect.
func (s *TaskService) Push(ctx context.Context) ([]domain.Task, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("no remote gateway configured")
	}

	created, err := s.gateway.CreateBatch(ctx, s.list.Tasks())
	if err != nil {
		return nil, fmt.Errorf("push local tasks: %w", err)
	}

	return created, nil
}

// PushUpdate mirrors one task's pending change to the remote
// collection as a partial update. The local list is left untouched;
// the server's copy is returned.
func (s *TaskService) PushUpdate(ctx context.Context, id domain.TaskID, patch domain.TaskPatch) (domain.Task, error) {
	if s.gateway == nil {
		return domain.Task{}, fmt.Errorf("no remote gateway configured")
	}

	updated, err := s.gateway.Update(ctx, id, patch)
	if err != nil {
		return domain.Task{}, fmt.Errorf("push task update: %w", err)
	}

	return updated, nil
}

func (s *TaskService) Tasks() []domain.Task {
	return s.list.Tasks()
}

func (s *TaskService) Get(id domain.TaskID) (domain.Task, bool) {
	return s.list.Get(id)
}

func (s *TaskService) Remaining() int {
	return s.list.Remaining()
}

func (s *TaskService) Completed() int {
	return s.list.Completed()
}

// persist writes the current collection to the local snapshot; on
// failure the in-memory list is restored to prev so memory and disk
// never diverge.
func (s *TaskService) persist(ctx context.Context, prev []domain.Task) error {
	if s.repo == nil {
		return nil
	}

	if err := s.repo.Save(ctx, s.list.Tasks()); err != nil {
		s.list.Replace(prev)
		return fmt.Errorf("save task snapshot: %w", err)
	}

	return nil
}
