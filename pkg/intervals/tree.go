// Package intervals stores day intervals in a static augmented interval
// tree. A tree is built once from a slice of records and never changes;
// queries walk an implicit balanced tree laid over the records sorted by
// start, pruning subtrees whose largest end cannot reach the query.
package intervals

import (
	"cmp"
	"slices"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/status"
)

// Record is a half-open interval [Start, End) of days during which the
// departments in Departments hold Status.
type Record struct {
	Start       dates.Day    `json:"start" yaml:"start"`
	End         dates.Day    `json:"end" yaml:"end"`
	Departments depts.Set    `json:"departments" yaml:"departments"`
	Status      status.Tuple `json:"status" yaml:"status"`
	Kind        status.Kind  `json:"kind" yaml:"kind"`
}

// Contains reports whether day falls inside the record.
func (r Record) Contains(day dates.Day) bool {
	return r.Start <= day && day < r.End
}

// Overlaps reports whether the record intersects [start, end).
func (r Record) Overlaps(start, end dates.Day) bool {
	return r.Start < end && start < r.End
}

// LastDay returns the inclusive final day of the record.
func (r Record) LastDay() dates.Day {
	return r.End - 1
}

// Tree is an immutable interval tree. The zero value is an empty tree.
type Tree struct {
	records []Record
	maxEnd  []dates.Day
}

// New builds a tree from records. Identical records are stored once.
// A record whose end is not after its start is rejected.
func New(records []Record) (*Tree, error) {
	for _, r := range records {
		if r.End <= r.Start {
			return nil, errors.NewIntegrityError("", "", "interval "+r.Start.String()+" to "+r.End.String()+" ends before it starts")
		}
	}
	return build(records), nil
}

func build(records []Record) *Tree {
	seen := make(map[Record]struct{}, len(records))
	unique := make([]Record, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		unique = append(unique, r)
	}

	slices.SortStableFunc(unique, func(a, b Record) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.End, b.End); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})

	t := &Tree{records: unique, maxEnd: make([]dates.Day, len(unique))}
	t.augment(0, len(unique))
	return t
}

// augment fills maxEnd for the subtree rooted at the middle of [lo, hi)
// and returns its value.
func (t *Tree) augment(lo, hi int) dates.Day {
	if lo >= hi {
		return 0
	}
	mid := int(uint(lo+hi) >> 1)
	m := t.records[mid].End
	if lo < mid {
		m = max(m, t.augment(lo, mid))
	}
	if mid+1 < hi {
		m = max(m, t.augment(mid+1, hi))
	}
	t.maxEnd[mid] = m
	return m
}

// At returns the records containing day, ordered by start.
func (t *Tree) At(day dates.Day) []Record {
	return t.Overlap(day, day+1)
}

// Overlap returns the records intersecting the half-open range
// [start, end), ordered by start. An empty range matches nothing.
func (t *Tree) Overlap(start, end dates.Day) []Record {
	if t == nil || end <= start {
		return nil
	}
	var out []Record
	t.search(0, len(t.records), start, end, &out)
	return out
}

func (t *Tree) search(lo, hi int, start, end dates.Day, out *[]Record) {
	if lo >= hi {
		return
	}
	mid := int(uint(lo+hi) >> 1)
	if t.maxEnd[mid] <= start {
		return
	}
	t.search(lo, mid, start, end, out)
	r := t.records[mid]
	if r.Start >= end {
		return
	}
	if start < r.End {
		*out = append(*out, r)
	}
	t.search(mid+1, hi, start, end, out)
}

// Union returns a new tree holding the records of both trees. Neither
// input is modified and overlapping records are kept side by side.
func (t *Tree) Union(other *Tree) *Tree {
	combined := make([]Record, 0, t.Len()+other.Len())
	combined = append(combined, t.Records()...)
	combined = append(combined, other.Records()...)
	return build(combined)
}

// Records returns a copy of every record, ordered by start.
func (t *Tree) Records() []Record {
	if t == nil {
		return nil
	}
	return slices.Clone(t.records)
}

// Len returns the number of stored records.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// IsEmpty reports whether the tree holds no records.
func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Begin returns the earliest start in the tree.
func (t *Tree) Begin() (dates.Day, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	return t.records[0].Start, true
}

// End returns the latest exclusive end in the tree.
func (t *Tree) End() (dates.Day, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	return t.maxEnd[len(t.records)/2], true
}
