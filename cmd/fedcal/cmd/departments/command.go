// Package departments provides the departments command.
package departments

import (
	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/cmd/application"
	"github.com/psuedomagi/fedcal/internal/cmd/output"
	"github.com/psuedomagi/fedcal/internal/cmd/table"
	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
)

// Entry is the structured form of one department.
type Entry struct {
	ID        depts.Department `json:"id" yaml:"id"`
	Abbrev    string           `json:"abbreviation" yaml:"abbreviation"`
	Name      string           `json:"name" yaml:"name"`
	ShortName string           `json:"short_name" yaml:"short_name"`
	Formed    *dates.Day       `json:"formed,omitempty" yaml:"formed,omitempty"`
}

// NewCommand creates the departments command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments [date]",
		GroupID: "core",
		Aliases: []string{"depts"},
		Short:   "List the executive departments active on a date",
		Example: `  fedcal departments                   # Today
  fedcal departments 2002-01-01        # Before DHS was formed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := any(dates.Today())
			if len(args) == 1 {
				date = args[0]
			}

			cal, err := app.Calendar()
			if err != nil {
				return err
			}

			set, err := cal.DepartmentsActiveOn(date)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, func(wide bool) table.Data {
				return table.DepartmentsToTableData(set, wide)
			}, entries(set))
		},
	}

	return cmd
}

func entries(set depts.Set) []Entry {
	out := make([]Entry, 0, set.Len())
	for _, d := range set.Members() {
		e := Entry{
			ID:        d,
			Abbrev:    d.Abbrev(),
			Name:      d.FullName(),
			ShortName: d.ShortName(),
		}
		if day, ok := d.Formed(); ok {
			e.Formed = &day
		}
		out = append(out, e)
	}
	return out
}
