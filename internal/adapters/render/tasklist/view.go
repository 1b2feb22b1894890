package tasklist

import (
	"fmt"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ShowIDs appends each task's id so it can be fed back to
	// done/rm/edit.
	ShowIDs bool
}

func renderView(tasks []domain.Task, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Tasks"),
	}

	if len(tasks) == 0 {
		lines = append(lines, s.empty.Render("No tasks yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	remaining := 0
	for _, task := range tasks {
		if !task.Done {
			remaining++
		}
		lines = append(lines, renderTask(task, opts, s))
	}
	completed := len(tasks) - remaining

	lines = append(lines, s.stats.Render(fmt.Sprintf("%d remaining · %d completed", remaining, completed)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTask(task domain.Task, opts RenderOptions, s styles) string {
	checkbox := "[ ]"
	textStyle := s.pending
	if task.Done {
		checkbox = "[x]"
		textStyle = s.done
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.checkbox.Render(checkbox),
		" ",
		textStyle.Render(task.Text),
	)

	if opts.ShowIDs {
		line += " " + s.id.Render(fmt.Sprintf("(%s)", task.ID))
	}

	return line
}

// RenderSession formats the session line for whoami-style output. The
// token itself is never printed.
func RenderSession(session domain.Session) string {
	s := newStyles()

	lines := []string{
		s.header.Render(fmt.Sprintf("session: %s", session.State)),
	}

	if session.IsAuthenticated() {
		name := session.User.Name()
		if name == "" {
			name = "unknown"
		}
		lines = append(lines, s.pending.Render(fmt.Sprintf("user: %s", name)))
	}

	if session.Error != "" {
		lines = append(lines, s.warning.Render(fmt.Sprintf("error: %s", session.Error)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
