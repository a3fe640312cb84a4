package cli

import (
	"errors"
	"fmt"

	"github.com/pablasso/tasktracker/internal/app"
	"github.com/pablasso/tasktracker/internal/config"
	"github.com/pablasso/tasktracker/internal/logging"
	"github.com/spf13/cobra"
)

// skipAppAnnotation marks commands that run without opening the store.
const skipAppAnnotation = "tasktracker/skip-app"

// session holds the flags shared by every command and the app opened for
// the running command.
type session struct {
	configPath string
	overrides  config.Overrides
	app        *app.App
}

func (s *session) open(cmd *cobra.Command) error {
	cfg, err := config.Resolve(s.configPath, s.overrides)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	a, err := app.Open(cfg, logger)
	if err != nil {
		return err
	}
	s.app = a
	return nil
}

func (s *session) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}

func newRootCmd() (*cobra.Command, *session) {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "tasktracker",
		Short: "A terminal task tracker",
		Long: `Tasktracker keeps a local list of tasks with due dates and priorities.
Run it without a command to open the interactive tracker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}
			return s.open(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tasktracker/config.toml)")
	flags.StringVar(&s.overrides.DataDir, "data-dir", "", "Directory holding the task store")
	flags.StringVar(&s.overrides.Backend, "backend", "", "Storage backend: file|sqlite|memory")
	flags.StringVar(&s.overrides.Locale, "locale", "", "Locale used to sort titles, e.g. en or sv")
	flags.StringVar(&s.overrides.LogLevel, "log-level", "", "Log level: debug|info|warn|error")

	rootCmd.AddCommand(
		newAddCmd(s),
		newListCmd(s),
		newToggleCmd(s),
		newDeleteCmd(s),
		newEditCmd(s),
		newSortCmd(s),
		newThemeCmd(s),
		newVersionCmd(),
	)
	return rootCmd, s
}

// needsApp reports whether cmd works on the task store. Help, shell
// completion and version run without taking the data directory lock.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipAppAnnotation] != "" {
			return false
		}
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "completion":
			return false
		}
	}
	return true
}

// Execute runs the root command with args.
func Execute(args []string) error {
	rootCmd, s := newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if closeErr := s.close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("close: %w", closeErr))
	}
	return err
}
