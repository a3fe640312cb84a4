package tui

import (
	"github.com/charmbracelet/log"
	"github.com/pablasso/tasktracker/internal/storage"
	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/tui/views"
)

// TaskStore is the task store the TUI renders and observes.
type TaskStore interface {
	views.TaskStore
	Subscribe(fn func(store.Event)) (unsubscribe func())
}

// ThemeController switches between the light and dark themes.
type ThemeController interface {
	Current() storage.Theme
	Toggle() error
}

// Options configures TUI startup behavior.
type Options struct {
	Store  TaskStore
	Theme  ThemeController
	Logger *log.Logger
}
