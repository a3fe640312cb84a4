package theme

import (
	"errors"
	"testing"

	"github.com/pablasso/tasktracker/internal/storage"
)

func TestNew_StartupPreference(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   storage.Theme
	}{
		{"unset starts light", "", storage.ThemeLight},
		{"dark", "dark", storage.ThemeDark},
		{"light", "light", storage.ThemeLight},
		{"garbage starts light", "purple", storage.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			if tt.stored != "" {
				kv.Set(storage.ThemeKey, tt.stored)
			}
			c := New(storage.NewAdapter(kv, nil))
			if c.Current() != tt.want {
				t.Errorf("Current() = %q, want %q", c.Current(), tt.want)
			}
		})
	}
}

func TestToggle_PersistsAndRoundTrips(t *testing.T) {
	kv := storage.NewMemoryKV()
	adapter := storage.NewAdapter(kv, nil)
	c := New(adapter)

	if err := c.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !c.IsDark() {
		t.Fatal("expected dark after first toggle")
	}
	if raw, _, _ := kv.Get(storage.ThemeKey); raw != "dark" {
		t.Errorf("stored = %q, want dark", raw)
	}
	if !New(adapter).IsDark() {
		t.Error("new controller should restore dark")
	}

	if err := c.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if raw, _, _ := kv.Get(storage.ThemeKey); raw != "light" {
		t.Errorf("stored = %q, want light", raw)
	}
}

func TestToggle_SaveError(t *testing.T) {
	kv := storage.NewMemoryKV()
	c := New(storage.NewAdapter(kv, nil))
	kv.Err = errors.New("read-only")

	if err := c.Toggle(); err == nil {
		t.Fatal("expected save error")
	}
	if !c.IsDark() {
		t.Error("theme still flips in memory when the save fails")
	}
}
