package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositorySaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.toml")
	repo, err := NewRepository(path)
	require.NoError(t, err)

	in := []domain.Task{
		{ID: "1-0", Text: "Buy milk"},
		{ID: "1-1", Text: "Walk dog", Done: true},
	}
	require.NoError(t, repo.Save(context.Background(), in))

	out, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in, out)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tasksFileMode), info.Mode().Perm())
}

func TestRepositoryLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "tasks.toml"))
	require.NoError(t, err)

	tasks, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestRepositorySaveOverwritesPreviousSnapshot(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "tasks.toml"))
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), []domain.Task{{ID: "1-0", Text: "Buy milk"}}))
	require.NoError(t, repo.Save(context.Background(), []domain.Task{{ID: "2-0", Text: "Walk dog"}}))

	tasks, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskID("2-0"), tasks[0].ID)
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported tasks schema version")
}

func TestRepositoryRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewRepository("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tasks path is empty")
}

func TestRepositoryMalformedFileFailsDecode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tasks file")
}
