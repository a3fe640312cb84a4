// Package testutil provides testing utilities for the tasktracker project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// EnvVars lists the TASKTRACKER_* variables the config layer reads.
var EnvVars = []string{
	"TASKTRACKER_DATA_DIR",
	"TASKTRACKER_BACKEND",
	"TASKTRACKER_LOCALE",
	"TASKTRACKER_LOG_LEVEL",
	"TASKTRACKER_LOG_FORMAT",
}

// IsolateEnv points HOME and the XDG directories at a fresh temp dir and
// clears every TASKTRACKER_* variable for the duration of the test.
// Returns the resolved temp directory path.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	for _, name := range EnvVars {
		// Setenv registers the restore; Unsetenv makes the variable absent.
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return tmpDir
}

// FixedClock returns a clock that always reports the given Unix
// millisecond timestamp.
func FixedClock(ms int64) func() time.Time {
	at := time.UnixMilli(ms)
	return func() time.Time { return at }
}
