// Package app wires configuration, storage, the task store and the theme
// controller together for the TUI and CLI entrypoints.
package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pablasso/tasktracker/internal/config"
	"github.com/pablasso/tasktracker/internal/storage"
	"github.com/pablasso/tasktracker/internal/storage/sqlite"
	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/theme"
)

// App owns every long-lived component of one session.
type App struct {
	Config  config.Config
	Logger  *log.Logger
	Adapter *storage.Adapter
	Store   *store.Store
	Theme   *theme.Controller

	lock        *storage.Lock
	unsubscribe func()
}

// Open locks the data directory, opens the configured backend and loads
// the task snapshot and theme preference.
func Open(cfg config.Config, logger *log.Logger) (*App, error) {
	backend := cfg.StorageBackend()

	var lock *storage.Lock
	if backend != storage.BackendMemory {
		lock = storage.NewLock(cfg.DataDir)
		if err := lock.Acquire(); err != nil {
			return nil, err
		}
	}

	kv, err := OpenKV(backend, cfg.DataDir)
	if err != nil {
		if lock != nil {
			lock.Release()
		}
		return nil, err
	}

	adapter := storage.NewAdapter(kv, logger)
	st := store.New(adapter, store.WithLocale(cfg.LocaleTag()))
	a := &App{
		Config:  cfg,
		Logger:  logger,
		Adapter: adapter,
		Store:   st,
		Theme:   theme.New(adapter),
		lock:    lock,
	}
	a.unsubscribe = st.Subscribe(a.logEvent)

	logger.Debug("opened task store", "backend", backend, "dir", cfg.DataDir, "tasks", st.Len())
	return a, nil
}

// OpenKV opens the key-value store for backend inside dataDir.
func OpenKV(backend storage.Backend, dataDir string) (storage.KV, error) {
	switch backend {
	case storage.BackendFile:
		return storage.NewFileKV(dataDir), nil
	case storage.BackendSQLite:
		kv, err := sqlite.Open(filepath.Join(dataDir, sqlite.FileName))
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return kv, nil
	case storage.BackendMemory:
		return storage.NewMemoryKV(), nil
	}
	return nil, fmt.Errorf("unsupported storage backend %q", backend)
}

func (a *App) logEvent(ev store.Event) {
	if ev.Kind == store.EventSorted {
		a.Logger.Debug("tasks sorted", "count", a.Store.Len())
		return
	}
	a.Logger.Debug("task "+string(ev.Kind), "id", ev.TaskID)
}

// Close releases the store and the data directory lock.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	var errs []error
	if err := a.Adapter.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	if a.lock != nil {
		if err := a.lock.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
