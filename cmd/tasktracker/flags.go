package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/tasktracker/internal/config"
)

type parseResult struct {
	ConfigPath  string
	Overrides   config.Overrides
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
	// RouteCLI is set when a command follows the flags.
	RouteCLI bool
}

// isSubcommand reports whether args start with a CLI command rather than
// TUI flags.
func isSubcommand(args []string) bool {
	return len(args) > 0 && !strings.HasPrefix(args[0], "-")
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("tasktracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var res parseResult
	fs.StringVar(&res.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tasktracker/config.toml)")
	fs.StringVar(&res.Overrides.DataDir, "data-dir", "", "Directory holding the task store")
	fs.StringVar(&res.Overrides.Backend, "backend", "", "Storage backend: file|sqlite|memory")
	fs.StringVar(&res.Overrides.Locale, "locale", "", "Locale used to sort titles, e.g. en or sv")
	fs.StringVar(&res.Overrides.LogLevel, "log-level", "", "Log level: debug|info|warn|error")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: tasktracker [flags]")
		fmt.Fprintln(&b, "       tasktracker <command> [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Without a command, tasktracker opens the interactive task list.")
		fmt.Fprintln(&b, "Run 'tasktracker help' to see the commands.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{RouteCLI: true}, nil
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	return res, nil
}
