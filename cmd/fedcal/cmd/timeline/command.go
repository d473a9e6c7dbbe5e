// Package timeline provides the timeline command.
package timeline

import (
	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/cmd/application"
	"github.com/psuedomagi/fedcal/internal/cmd/globals"
	"github.com/psuedomagi/fedcal/internal/cmd/output"
	"github.com/psuedomagi/fedcal/internal/cmd/table"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/resolver"
)

// NewCommand creates the timeline command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeline",
		GroupID: "core",
		Short:   "Show how department statuses changed over a range of dates",
		Long: `Timeline walks an inclusive range of dates and prints one entry each time
any department's status changes. --to defaults to today.`,
		Example: `  fedcal timeline --from 2018-12-01 --to 2019-02-28
  fedcal timeline --from 2013-09-25 --to 2013-10-20 -d DOD -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			span, err := globals.ParseRange(cmd)
			if err != nil {
				return err
			}
			if span == nil {
				return errors.NewValidationError("from", "", "--from is required")
			}

			filter, err := globals.ParseDepartments(cmd)
			if err != nil {
				return err
			}

			cal, err := app.Calendar()
			if err != nil {
				return err
			}

			snapshots, err := cal.Timeline(span.Start, span.End, filter...)
			if err != nil {
				return err
			}

			if flags, err := globals.Parse(cmd); err == nil && !flags.Quiet {
				logging.FromContext(cmd.Context()).Info().
					Str("range", span.String()).
					Int("changes", len(snapshots)).
					Msg("Built timeline")
			}

			format := output.Format(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, func(wide bool) table.Data {
				return table.TimelineToTableData(snapshots, wide)
			}, nonNil(snapshots))
		},
	}

	globals.AddRangeFlags(cmd)
	globals.AddDepartmentFlag(cmd)

	return cmd
}

// nonNil keeps structured output a list when nothing changed.
func nonNil(s []resolver.Snapshot) []resolver.Snapshot {
	if s == nil {
		return []resolver.Snapshot{}
	}
	return s
}
