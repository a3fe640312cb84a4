package cli

import (
	"fmt"

	"github.com/pablasso/tasktracker/internal/version"
	"github.com/spf13/cobra"
)

func newThemeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [show|toggle]",
		Short:     "Show or toggle the light/dark theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"show", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "show"
			if len(args) == 1 {
				action = args[0]
			}

			switch action {
			case "show":
			case "toggle":
				if err := s.app.Theme.Toggle(); err != nil {
					return fmt.Errorf("save theme: %w", err)
				}
			default:
				return fmt.Errorf("unknown theme action %q (want show or toggle)", action)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.app.Theme.Current())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
