// Package resolver answers funding status questions against a unified
// status tree: which status each department held on a given day, which
// departments existed, and how statuses changed across a range.
package resolver

import (
	"time"

	"github.com/psuedomagi/fedcal/internal/metrics"
	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/status"
	"github.com/psuedomagi/fedcal/pkg/statustree"
)

// Resolver resolves statuses from a shared tree handle. It holds no
// state of its own and is safe for concurrent use.
type Resolver struct {
	handle *statustree.Handle
}

// New returns a resolver reading from handle.
func New(handle *statustree.Handle) *Resolver {
	return &Resolver{handle: handle}
}

// Tree returns the underlying unified tree, building it if needed.
func (r *Resolver) Tree() (*statustree.Tree, error) {
	return r.handle.Tree()
}

// Resolve returns the status of every department active on date, or of
// just the departments in filter when any are given. Departments with no
// exception on the date hold the default status, or the cutoff default
// before continuing resolution data begins.
//
// Filtering on a department that did not exist on the date is an
// invalid-input error, as is a date outside the tree's build range.
func (r *Resolver) Resolve(date any, filter ...depts.Department) (status.Statuses, error) {
	start := time.Now()
	statuses, err := r.resolve(date, filter)
	metrics.RecordResolve(resultOf(err), time.Since(start))
	return statuses, err
}

func (r *Resolver) resolve(date any, filter []depts.Department) (status.Statuses, error) {
	day, err := dates.Normalize(date)
	if err != nil {
		return nil, err
	}

	tree, err := r.handle.Tree()
	if err != nil {
		return nil, err
	}
	if err := checkBounds(tree, day); err != nil {
		return nil, err
	}

	active := depts.ActiveOn(day)
	wanted := active
	if len(filter) > 0 {
		wanted, err = filterSet(day, active, filter)
		if err != nil {
			return nil, err
		}
	}

	return r.statusesOn(tree, day, wanted)
}

// DepartmentsActiveOn returns the departments that existed on date.
func (r *Resolver) DepartmentsActiveOn(date any) (depts.Set, error) {
	day, err := dates.Normalize(date)
	if err != nil {
		return depts.Set{}, err
	}
	return depts.ActiveOn(day), nil
}

// statusesOn assigns each wanted department its status on day. Two
// records giving one department different statuses is a data integrity
// error and never falls back to a default.
func (r *Resolver) statusesOn(tree *statustree.Tree, day dates.Day, wanted depts.Set) (status.Statuses, error) {
	fallback := status.Default.Tuple()
	if day < tree.CRDataStart() {
		fallback = status.CRDataCutoffDefault.Tuple()
	}

	assigned := make(status.Statuses, wanted.Len())
	for _, rec := range tree.At(day) {
		for _, d := range rec.Departments.Intersect(wanted).Members() {
			if prev, ok := assigned[d]; ok && prev != rec.Status {
				err := errors.NewIntegrityError(d.String(), day.String(), "conflicting statuses", prev.String(), rec.Status.String())
				r.handle.Logger().Error().Err(err).Msg("Conflicting statuses at resolve time")
				return nil, err
			}
			assigned[d] = rec.Status
		}
	}

	for _, d := range wanted.Members() {
		if _, ok := assigned[d]; !ok {
			assigned[d] = fallback
		}
	}
	return assigned, nil
}

func filterSet(day dates.Day, active depts.Set, filter []depts.Department) (depts.Set, error) {
	var set depts.Set
	for _, d := range filter {
		if !d.Valid() {
			return depts.Set{}, errors.NewValidationError("department", d, "unknown department "+d.String())
		}
		if !active.Has(d) {
			return depts.Set{}, errors.NewValidationError("department", d, d.String()+" did not exist on "+day.String())
		}
		set = set.Add(d)
	}
	return set, nil
}

func checkBounds(tree *statustree.Tree, day dates.Day) error {
	bounds := tree.Bounds()
	if bounds == nil || bounds.Contains(day) {
		return nil
	}
	return errors.NewValidationError("date", day, day.String()+" is outside the built range "+bounds.String())
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.IsInvalidInput(err):
		return metrics.ResultInvalidInput
	case errors.IsDataIntegrity(err):
		return metrics.ResultIntegrity
	default:
		return metrics.ResultError
	}
}
