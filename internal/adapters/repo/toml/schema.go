package toml

import (
	"fmt"

	"github.com/bnema/todo-tasks-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Tasks   []taskSchema `toml:"tasks"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported tasks schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type taskSchema struct {
	ID   string `toml:"id"`
	Text string `toml:"text"`
	Done bool   `toml:"done"`
}

func toSchema(task domain.Task) taskSchema {
	return taskSchema{ID: string(task.ID), Text: task.Text, Done: task.Done}
}

func fromSchema(entry taskSchema) domain.Task {
	return domain.Task{ID: domain.TaskID(entry.ID), Text: entry.Text, Done: entry.Done}
}
