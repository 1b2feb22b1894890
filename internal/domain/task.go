package domain

import "strings"

type TaskID string

type Task struct {
	ID   TaskID
	Text string
	Done bool
}

// TaskPatch carries a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Text *string
	Done *bool
}

func PatchText(text string) TaskPatch {
	return TaskPatch{Text: &text}
}

func PatchDone(done bool) TaskPatch {
	return TaskPatch{Done: &done}
}

// Apply returns the task with the patch's set fields replaced.
func (p TaskPatch) Apply(task Task) Task {
	if p.Text != nil {
		task.Text = *p.Text
	}
	if p.Done != nil {
		task.Done = *p.Done
	}
	return task
}

func (t Task) Valid() bool {
	return t.ID != "" && strings.TrimSpace(t.Text) != ""
}
