package resolver

import (
	"slices"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/intervals"
	"github.com/psuedomagi/fedcal/pkg/status"
)

// Snapshot is the status map holding from Day through Through inclusive.
type Snapshot struct {
	Day      dates.Day       `json:"day" yaml:"day"`
	Through  dates.Day       `json:"through" yaml:"through"`
	Statuses status.Statuses `json:"statuses" yaml:"statuses"`
}

// Timeline returns the status changes across the inclusive range from
// start to end. The first snapshot begins at start; each later one
// begins on a day where some department's status changes. With a filter,
// only those departments are reported, and each only on days it existed.
//
// As with Resolve, an unknown department in filter is an invalid-input
// error, as is one that did not exist on any day of the range. A
// department formed partway through the range is accepted and appears
// from its formation on.
func (r *Resolver) Timeline(start, end any, filter ...depts.Department) ([]Snapshot, error) {
	span, err := dates.NewRange(start, end)
	if err != nil {
		return nil, err
	}

	tree, err := r.handle.Tree()
	if err != nil {
		return nil, err
	}
	if err := checkBounds(tree, span.Start); err != nil {
		return nil, err
	}
	if err := checkBounds(tree, span.End); err != nil {
		return nil, err
	}

	wanted := depts.All()
	if len(filter) > 0 {
		// Departments only ever join, so the last day has the widest set.
		wanted, err = filterSet(span.End, depts.ActiveOn(span.End), filter)
		if err != nil {
			return nil, err
		}
	}

	var snapshots []Snapshot
	for _, day := range boundaries(tree.All(), span, tree.CRDataStart()) {
		statuses, err := r.statusesOn(tree, day, wanted.Intersect(depts.ActiveOn(day)))
		if err != nil {
			return nil, err
		}
		if n := len(snapshots); n > 0 && snapshots[n-1].Statuses.Equal(statuses) {
			continue
		}
		snapshots = append(snapshots, Snapshot{Day: day, Statuses: statuses})
	}

	for i := range snapshots {
		if i+1 < len(snapshots) {
			snapshots[i].Through = snapshots[i+1].Day - 1
		} else {
			snapshots[i].Through = span.End
		}
	}
	return snapshots, nil
}

// boundaries lists the days inside span on which a status can change:
// the span start, each record start, each day after a record ends, the
// start of CR data and the formation of DHS.
func boundaries(tree *intervals.Tree, span dates.Range, crDataStart dates.Day) []dates.Day {
	days := []dates.Day{span.Start}
	add := func(d dates.Day) {
		if d > span.Start && d <= span.End {
			days = append(days, d)
		}
	}

	for _, rec := range tree.Overlap(span.Start, span.End+1) {
		add(rec.Start)
		add(rec.End)
	}
	add(crDataStart)
	add(depts.DHSFormed)

	slices.Sort(days)
	return slices.Compact(days)
}
