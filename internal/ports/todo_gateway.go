package ports

import (
	"context"

	"github.com/bnema/todo-tasks-cli/internal/domain"
)

// TodoGateway issues single-attempt CRUD calls against the remote todo
// collection. It keeps no task state between calls.
type TodoGateway interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, id domain.TaskID, patch domain.TaskPatch) (domain.Task, error)
	Delete(ctx context.Context, id domain.TaskID) error
	CreateBatch(ctx context.Context, tasks []domain.Task) ([]domain.Task, error)
}
