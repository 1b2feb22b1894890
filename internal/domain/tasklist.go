package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskList owns the ordered task collection and the single edit draft.
// All operations are synchronous; Tasks returns a snapshot so callers
// never observe hidden mutation.
type TaskList struct {
	tasks []Task
	draft editDraft

	now       func() time.Time
	lastStamp int64
	seq       int64
}

type editDraft struct {
	id   TaskID
	text string
}

func NewTaskList() *TaskList {
	return &TaskList{now: time.Now}
}

// NewTaskListAt pins the id-generation clock, for tests.
func NewTaskListAt(now func() time.Time) *TaskList {
	if now == nil {
		now = time.Now
	}
	return &TaskList{now: now}
}

// Add appends a new pending task with a fresh id. Empty or
// whitespace-only text is a no-op and reports false.
func (l *TaskList) Add(text string) (Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, false
	}

	task := Task{ID: l.freshID(), Text: trimmed}
	l.tasks = append(l.tasks, task)

	return task, true
}

// Delete removes the task with the given id; absent ids are a no-op.
// Deleting the task under edit also drops the draft.
func (l *TaskList) Delete(id TaskID) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			if l.draft.id == id {
				l.draft = editDraft{}
			}
			return true
		}
	}

	return false
}

// Toggle flips the done flag on the task with the given id; absent ids
// are a no-op.
func (l *TaskList) Toggle(id TaskID) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Done = !l.tasks[i].Done
			return true
		}
	}

	return false
}

// BeginEdit opens an edit draft for the given task, overwriting any
// prior draft. Ids not present in the list are rejected so the draft
// always points at a live task.
func (l *TaskList) BeginEdit(id TaskID, currentText string) bool {
	if _, ok := l.find(id); !ok {
		return false
	}

	l.draft = editDraft{id: id, text: currentText}
	return true
}

// SetEditText replaces the draft's working buffer. No draft, no effect.
func (l *TaskList) SetEditText(text string) {
	if l.draft.id == "" {
		return
	}
	l.draft.text = text
}

// SaveEdit commits the draft text to the task. An empty trimmed buffer
// is a no-op that keeps the draft open; a successful save clears it.
func (l *TaskList) SaveEdit(id TaskID) bool {
	if l.draft.id != id {
		return false
	}

	trimmed := strings.TrimSpace(l.draft.text)
	if trimmed == "" {
		return false
	}

	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Text = trimmed
			l.draft = editDraft{}
			return true
		}
	}

	// Draft pointed at a task that vanished; drop it.
	l.draft = editDraft{}
	return false
}

// CancelEdit drops the draft unconditionally.
func (l *TaskList) CancelEdit() {
	l.draft = editDraft{}
}

// Replace swaps the whole collection, keeping only valid tasks with
// trimmed text. Any open draft is dropped.
func (l *TaskList) Replace(tasks []Task) {
	replaced := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		task.Text = strings.TrimSpace(task.Text)
		if !task.Valid() {
			continue
		}
		replaced = append(replaced, task)
	}

	l.tasks = replaced
	l.draft = editDraft{}
}

// Tasks returns a snapshot of the collection in insertion order.
func (l *TaskList) Tasks() []Task {
	snapshot := make([]Task, len(l.tasks))
	copy(snapshot, l.tasks)
	return snapshot
}

func (l *TaskList) Get(id TaskID) (Task, bool) {
	return l.find(id)
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

func (l *TaskList) Remaining() int {
	count := 0
	for _, task := range l.tasks {
		if !task.Done {
			count++
		}
	}
	return count
}

func (l *TaskList) Completed() int {
	return len(l.tasks) - l.Remaining()
}

// Editing reports the current draft, if any.
func (l *TaskList) Editing() (TaskID, string, bool) {
	if l.draft.id == "" {
		return "", "", false
	}
	return l.draft.id, l.draft.text, true
}

// freshID derives ids from the millisecond clock with a sequence
// suffix, so ids stay unique and ordered within a process even when
// several tasks land on the same millisecond.
func (l *TaskList) freshID() TaskID {
	stamp := l.now().UnixMilli()
	if stamp <= l.lastStamp {
		stamp = l.lastStamp
		l.seq++
	} else {
		l.lastStamp = stamp
		l.seq = 0
	}

	return TaskID(fmt.Sprintf("%d-%d", stamp, l.seq))
}

func (l *TaskList) find(id TaskID) (Task, bool) {
	for _, task := range l.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}
