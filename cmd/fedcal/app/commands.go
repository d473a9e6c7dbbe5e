package app

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/cmd/fedcal/cmd/completion"
	"github.com/psuedomagi/fedcal/cmd/fedcal/cmd/departments"
	"github.com/psuedomagi/fedcal/cmd/fedcal/cmd/export"
	"github.com/psuedomagi/fedcal/cmd/fedcal/cmd/intervals"
	"github.com/psuedomagi/fedcal/cmd/fedcal/cmd/status"
	"github.com/psuedomagi/fedcal/cmd/fedcal/cmd/timeline"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(status.NewCommand(a))
	rootCmd.AddCommand(timeline.NewCommand(a))
	rootCmd.AddCommand(departments.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(intervals.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.CreateVersionCommand())
	rootCmd.AddCommand(completion.NewCommand())
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fedcal %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", buildDate(a.date))
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
			}
		},
	}
}

// buildDate renders an RFC 3339 build timestamp in UTC, or returns the
// raw value when it does not parse.
func buildDate(raw string) string {
	t, err := utc.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02 15:04 MST")
}
