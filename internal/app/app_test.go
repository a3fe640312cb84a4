package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pablasso/tasktracker/internal/config"
	"github.com/pablasso/tasktracker/internal/storage"
	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/task"
)

func testConfig(t *testing.T, backend string) config.Config {
	t.Helper()
	return config.Config{
		DataDir:   filepath.Join(t.TempDir(), "data"),
		Backend:   backend,
		Locale:    "en",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func TestOpen_PersistsAcrossSessions(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t, backend)

			first, err := Open(cfg, log.New(&bytes.Buffer{}))
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			tk, err := first.Store.Add("Pay bills", "Monthly bill", "2024-03-01", task.PriorityHigh)
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			if err := first.Theme.Toggle(); err != nil {
				t.Fatalf("toggle theme: %v", err)
			}
			if err := first.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			second, err := Open(cfg, log.New(&bytes.Buffer{}))
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer second.Close()

			got, ok := second.Store.Get(tk.ID)
			if !ok || got != tk {
				t.Errorf("reloaded task = %+v, want %+v", got, tk)
			}
			if !second.Theme.IsDark() {
				t.Error("theme preference not restored")
			}
		})
	}
}

func TestOpen_DataDirIsExclusive(t *testing.T) {
	cfg := testConfig(t, "file")

	first, err := Open(cfg, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer first.Close()

	_, err = Open(cfg, log.New(&bytes.Buffer{}))
	if !errors.Is(err, storage.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestClose_ReleasesLock(t *testing.T) {
	cfg := testConfig(t, "file")

	a, err := Open(cfg, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(storage.NewLock(cfg.DataDir).Path()); !os.IsNotExist(err) {
		t.Errorf("lock file still present: %v", err)
	}
}

func TestOpen_LogsStoreEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	a, err := Open(testConfig(t, "memory"), logger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	tk, _ := a.Store.Add("A", "b", "2024-01-01", task.PriorityLow)
	a.Store.Sort(store.SortByTitle)

	out := buf.String()
	if !strings.Contains(out, "task added") {
		t.Errorf("expected add event in log, got %q", out)
	}
	if !strings.Contains(out, "tasks sorted") {
		t.Errorf("expected sort event in log, got %q", out)
	}
	if !strings.Contains(out, "id=") || tk.ID == 0 {
		t.Errorf("expected task id in log, got %q", out)
	}
}

func TestOpenKV_Unknown(t *testing.T) {
	if _, err := OpenKV(storage.Backend("postgres"), t.TempDir()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
