// Package intervals provides the intervals command.
package intervals

import (
	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/cmd/application"
	"github.com/psuedomagi/fedcal/internal/cmd/globals"
	"github.com/psuedomagi/fedcal/internal/cmd/output"
	"github.com/psuedomagi/fedcal/internal/cmd/table"
	"github.com/psuedomagi/fedcal/pkg/intervals"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/resolver"
)

// NewCommand creates the intervals command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "intervals",
		GroupID: "management",
		Short:   "List the stored status intervals",
		Long: `Intervals lists the exception intervals held in the status tree: continuing
resolutions, appropriations gaps and shutdowns. Ends are shown inclusive.
Limit the listing with --source and a --from/--to range.`,
		Example: `  fedcal intervals                              # Everything
  fedcal intervals --source gap                 # Gaps and shutdowns only
  fedcal intervals --source cr --from 2010-01-01 --to 2011-12-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := resolver.ParseSource(mustGetString(cmd, "source"))
			if err != nil {
				return err
			}

			span, err := globals.ParseRange(cmd)
			if err != nil {
				return err
			}

			cal, err := app.Calendar()
			if err != nil {
				return err
			}

			records, err := cal.Intervals(source, span)
			if err != nil {
				return err
			}
			if records == nil {
				records = []intervals.Record{}
			}

			ctx := logging.WithSource(cmd.Context(), string(source))
			logging.FromContext(ctx).Debug().
				Int("records", len(records)).
				Msg("Listed intervals")

			format := output.Format(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, func(wide bool) table.Data {
				return table.RecordsToTableData(records, wide)
			}, records)
		},
	}

	cmd.Flags().String("source", string(resolver.SourceAll), "records to list: all, cr, gap")
	globals.AddRangeFlags(cmd)

	return cmd
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
