package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pablasso/tasktracker/internal/task"
)

// Fixed keys in the durable store.
const (
	TasksKey = "tasks"
	ThemeKey = "theme"
)

// Theme is the persisted display preference.
type Theme string

// Theme values. ThemeUnset means no preference has been stored.
const (
	ThemeUnset Theme = ""
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Adapter reads and writes the task snapshot and theme preference.
// Every save overwrites the previous snapshot wholesale.
type Adapter struct {
	kv     KV
	logger *log.Logger
}

// NewAdapter wraps kv. A nil logger discards output.
func NewAdapter(kv KV, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{kv: kv, logger: logger}
}

// Load returns the persisted tasks. An absent, malformed or unreadable
// snapshot yields an empty slice; the failure is only logged. Tasks saved
// without a status load as pending.
func (a *Adapter) Load() []task.Task {
	raw, ok, err := a.kv.Get(TasksKey)
	if err != nil {
		a.logger.Warn("task snapshot unavailable", "err", err)
		return []task.Task{}
	}
	if !ok {
		return []task.Task{}
	}

	var tasks []task.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		a.logger.Warn("task snapshot is malformed, starting empty", "err", err)
		return []task.Task{}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	for i := range tasks {
		if tasks[i].Status == "" {
			tasks[i].Status = task.StatusPending
		}
	}
	return tasks
}

// Save serializes the full sequence and overwrites the snapshot.
func (a *Adapter) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	if err := a.kv.Set(TasksKey, string(data)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	a.logger.Debug("saved tasks", "count", len(tasks))
	return nil
}

// LoadTheme returns the stored theme preference, or ThemeUnset if none is
// stored or the value is not recognized.
func (a *Adapter) LoadTheme() Theme {
	raw, ok, err := a.kv.Get(ThemeKey)
	if err != nil {
		a.logger.Warn("theme preference unavailable", "err", err)
		return ThemeUnset
	}
	if !ok {
		return ThemeUnset
	}
	switch Theme(raw) {
	case ThemeDark, ThemeLight:
		return Theme(raw)
	}
	return ThemeUnset
}

// SaveTheme overwrites the stored theme preference.
func (a *Adapter) SaveTheme(t Theme) error {
	if t != ThemeDark && t != ThemeLight {
		return fmt.Errorf("invalid theme %q", t)
	}
	if err := a.kv.Set(ThemeKey, string(t)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (a *Adapter) Close() error {
	return a.kv.Close()
}
