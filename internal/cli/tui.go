package cli

import (
	"errors"

	"github.com/pablasso/tasktracker/internal/app"
	"github.com/pablasso/tasktracker/internal/config"
	"github.com/pablasso/tasktracker/internal/logging"
	"github.com/pablasso/tasktracker/internal/tui"
)

// RunTUI opens the store and runs the interactive tracker. The TUI owns the
// terminal, so logs go to the data directory instead of stderr.
func RunTUI(configPath string, overrides config.Overrides) (err error) {
	cfg, err := config.Resolve(configPath, overrides)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.OpenFile(cfg.DataDir, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	defer logFile.Close()

	a, err := app.Open(cfg, logger)
	if err != nil {
		logger.Error("open store", "err", err)
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()

	logger.Info("starting tui", "backend", cfg.Backend, "tasks", a.Store.Len())
	return tui.Run(tui.Options{
		Store:  a.Store,
		Theme:  a.Theme,
		Logger: logger,
	})
}
