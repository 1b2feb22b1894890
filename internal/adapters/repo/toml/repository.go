package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/bnema/todo-tasks-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	tasksFileMode   = 0o600
	tasksDirMode    = 0o700
	tempFilePattern = ".tasks-*.toml.tmp"
)

// Repository snapshots the task collection to a TOML file. Writes go
// through a temp file and rename so a crash never leaves a torn
// snapshot, and all repositories for the same path share one lock.
type Repository struct {
	tasksPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.TaskRepository = (*Repository)(nil)

func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("tasks path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve tasks path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{tasksPath: absPath, mu: lockForPath(absPath)}, nil
}

// Load reads the snapshot; a missing file is an empty collection.
func (r *Repository) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(file.Tasks))
	for _, entry := range file.Tasks {
		tasks = append(tasks, fromSchema(entry))
	}

	return tasks, nil
}

func (r *Repository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{Version: currentSchemaVersion, Tasks: make([]taskSchema, 0, len(tasks))}
	for _, task := range tasks {
		file.Tasks = append(file.Tasks, toSchema(task))
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.tasksPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read tasks file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode tasks file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.tasksPath), tasksDirMode); err != nil {
		return fmt.Errorf("create tasks directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode tasks file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.tasksPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp tasks file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp tasks file: %w", err)
	}

	if err := tempFile.Chmod(tasksFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp tasks file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp tasks file: %w", err)
	}

	if err := os.Rename(tempName, r.tasksPath); err != nil {
		return fmt.Errorf("replace tasks file: %w", err)
	}

	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
