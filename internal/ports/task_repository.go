package ports

import (
	"context"

	"github.com/bnema/todo-tasks-cli/internal/domain"
)

// TaskRepository snapshots the task collection between runs. Load on a
// missing snapshot returns an empty collection, not an error.
type TaskRepository interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}
