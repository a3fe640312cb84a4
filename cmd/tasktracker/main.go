package main

import (
	"fmt"
	"os"

	"github.com/pablasso/tasktracker/internal/cli"
	"github.com/pablasso/tasktracker/internal/version"
)

func main() {
	args := os.Args[1:]

	// A command routes to the CLI; otherwise launch the TUI
	if isSubcommand(args) {
		runCLI(args)
		return
	}

	res, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if res.RouteCLI {
		runCLI(args)
		return
	}
	if res.ShowHelp {
		fmt.Print(res.HelpText)
		return
	}
	if res.ShowVersion {
		fmt.Println(version.String())
		return
	}

	if err := cli.RunTUI(res.ConfigPath, res.Overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(args []string) {
	if err := cli.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
