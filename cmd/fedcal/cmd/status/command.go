// Package status provides the status command.
package status

import (
	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/cmd/application"
	"github.com/psuedomagi/fedcal/internal/cmd/globals"
	"github.com/psuedomagi/fedcal/internal/cmd/output"
	"github.com/psuedomagi/fedcal/internal/cmd/table"
	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/status"
)

// Report is the structured form of one resolved day.
type Report struct {
	Date        dates.Day       `json:"date" yaml:"date"`
	Statuses    status.Statuses `json:"statuses" yaml:"statuses"`
	AllFunded   bool            `json:"all_funded" yaml:"all_funded"`
	AnyCR       bool            `json:"any_cr" yaml:"any_cr"`
	AnyGap      bool            `json:"any_gap" yaml:"any_gap"`
	AnyShutdown bool            `json:"any_shutdown" yaml:"any_shutdown"`
}

// NewCommand creates the status command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status [date]",
		GroupID: "core",
		Short:   "Show each department's appropriations status on a date",
		Long: `Status resolves the funding and operational status of every executive
department active on a date. The date defaults to today and may be given as
YYYY-MM-DD, MM/DD/YYYY or an RFC 3339 timestamp.`,
		Example: `  fedcal status                        # Today
  fedcal status 2013-10-05             # During the 2013 shutdown
  fedcal status 12/25/2018 -d DHS -d DOD
  fedcal status 2019-01-01 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := any(dates.Today())
			if len(args) == 1 {
				date = args[0]
			}

			filter, err := globals.ParseDepartments(cmd)
			if err != nil {
				return err
			}

			cal, err := app.Calendar()
			if err != nil {
				return err
			}

			day, err := dates.Normalize(date)
			if err != nil {
				return err
			}

			statuses, err := cal.Resolve(day, filter...)
			if err != nil {
				return err
			}

			ctx := logging.WithDay(cmd.Context(), day.String())
			if len(filter) == 1 {
				ctx = logging.WithDepartment(ctx, filter[0].String())
			}
			logging.FromContext(ctx).Debug().
				Int("departments", len(statuses)).
				Msg("Resolved status")

			report := Report{
				Date:        day,
				Statuses:    statuses,
				AllFunded:   statuses.AllFunded(),
				AnyCR:       statuses.AnyCR(),
				AnyGap:      statuses.AnyGap(),
				AnyShutdown: statuses.AnyShutdown(),
			}

			format := output.Format(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, func(wide bool) table.Data {
				return table.StatusesToTableData(statuses, wide)
			}, report)
		},
	}

	globals.AddDepartmentFlag(cmd)

	return cmd
}
