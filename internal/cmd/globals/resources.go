package globals

import (
	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// AddDepartmentFlag adds the repeatable --dept flag to a command.
func AddDepartmentFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("dept", "d", nil, "department to report (repeatable; ID, abbreviation or name)")
}

// ParseDepartments returns the departments named by --dept.
// The command must have had AddDepartmentFlag called on it, otherwise this will panic.
func ParseDepartments(cmd *cobra.Command) ([]depts.Department, error) {
	names, err := cmd.Flags().GetStringSlice("dept")
	if err != nil {
		panic("programming error: failed to get flag dept: " + err.Error())
	}

	out := make([]depts.Department, 0, len(names))
	for _, name := range names {
		d, err := depts.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// AddRangeFlags adds --from and --to to a command.
func AddRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "first day of the range (YYYY-MM-DD or MM/DD/YYYY)")
	cmd.Flags().String("to", "", "last day of the range, inclusive")
}

// ParseRange returns the range named by --from and --to, or nil when
// neither is set. --to defaults to today.
// The command must have had AddRangeFlags called on it, otherwise this will panic.
func ParseRange(cmd *cobra.Command) (*dates.Range, error) {
	from := mustGetString(cmd, "from")
	to := mustGetString(cmd, "to")

	switch {
	case from == "" && to == "":
		return nil, nil
	case from == "":
		return nil, errors.NewValidationError("from", from, "--from is required when --to is set")
	case to == "":
		to = dates.Today().String()
	}

	r, err := dates.NewRange(from, to)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
