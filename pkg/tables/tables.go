// Package tables holds the historical source tables: continuing
// resolution spans with the departments they excluded, and appropriations
// gaps with the departments affected. Tables are parsed from YAML and
// validated before any tree is built from them.
package tables

import (
	"fmt"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// CREntry is one continuing resolution span. Start and End are inclusive.
// Excluded lists departments that held full-year appropriations instead.
type CREntry struct {
	Start    dates.Day
	End      dates.Day
	Excluded depts.Set
}

// GapEntry is one appropriations lapse. Start and End are inclusive.
type GapEntry struct {
	Start       dates.Day
	End         dates.Day
	Departments depts.Set
	Shutdown    bool
}

// CRTable is the continuing resolution source table.
type CRTable []CREntry

// GapTable is the appropriations gap source table.
type GapTable []GapEntry

// Tables bundles both source tables.
type Tables struct {
	CR   CRTable
	Gaps GapTable
}

// Validate checks every entry spans at least one day.
func (t CRTable) Validate() error {
	for i, e := range t {
		if e.End < e.Start {
			return errors.NewValidationError(fmt.Sprintf("continuing_resolutions[%d]", i), e, "end "+e.End.String()+" is before start "+e.Start.String())
		}
	}
	return nil
}

// Validate checks every entry spans at least one day and names at least
// one department. DHS may only be listed on entries that end on or after
// its formation.
func (t GapTable) Validate() error {
	for i, e := range t {
		field := fmt.Sprintf("appropriations_gaps[%d]", i)
		if e.End < e.Start {
			return errors.NewValidationError(field, e, "end "+e.End.String()+" is before start "+e.Start.String())
		}
		if e.Departments.IsEmpty() {
			return errors.NewValidationError(field, e, "no departments listed")
		}
		if e.Departments.Has(depts.DHS) && e.End < depts.DHSFormed {
			return errors.NewValidationError(field, e, "DHS listed before its formation on "+depts.DHSFormed.String())
		}
	}
	return nil
}

// Validate checks both tables.
func (t Tables) Validate() error {
	if err := t.CR.Validate(); err != nil {
		return err
	}
	return t.Gaps.Validate()
}

// Earliest returns the first start day in the table.
func (t CRTable) Earliest() (dates.Day, bool) {
	if len(t) == 0 {
		return 0, false
	}
	first := t[0].Start
	for _, e := range t[1:] {
		first = min(first, e.Start)
	}
	return first, true
}
