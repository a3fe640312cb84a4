// Package msgs defines shared message types for TUI view transitions.
package msgs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tasktracker/internal/store"
)

// View transition messages

// GoToListMsg signals transition to the task list view.
type GoToListMsg struct{}

// GoToFormMsg signals transition to the new task form.
type GoToFormMsg struct{}

// GoToEditMsg signals the start of the edit prompts for a task.
type GoToEditMsg struct {
	TaskID int64
}

// ToggleThemeMsg asks the root model to flip between light and dark.
type ToggleThemeMsg struct{}

// TasksChangedMsg delivers the store events queued since the last update.
type TasksChangedMsg struct {
	Events []store.Event
}

// ErrorMsg carries an infrastructure error to show in the error line.
type ErrorMsg struct {
	Err error
}

// ErrorCmd returns a command that reports err, or nil when err is nil.
func ErrorCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return ErrorMsg{Err: err} }
}
