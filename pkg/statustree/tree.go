// Package statustree builds the unified appropriations status tree: one
// interval tree holding every continuing resolution and every
// appropriations gap, each recorded as an exception to full-year funding.
//
// Records from the two sources are never merged. A day covered by both a
// CR and a gap yields both records from a point query. Tables in which
// such overlaps give one department two different statuses on the same
// day are rejected at build time.
package statustree

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/psuedomagi/fedcal/internal/metrics"
	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/intervals"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/tables"
)

// DefaultCRDataStart is the first day covered by the bundled continuing
// resolution data. It is used when a CR table is empty.
var DefaultCRDataStart = dates.FromDate(1998, time.October, 1)

// Tree is the immutable unified status tree.
type Tree struct {
	cr          *intervals.Tree
	gaps        *intervals.Tree
	all         *intervals.Tree
	bounds      *dates.Range
	crDataStart dates.Day
}

// Build constructs a unified tree from both tables with fresh builders.
func Build(t tables.Tables, bounds *dates.Range) (*Tree, error) {
	return build(t, bounds, &CRBuilder{}, &GapBuilder{}, logging.Default())
}

func build(t tables.Tables, bounds *dates.Range, crb *CRBuilder, gapb *GapBuilder, log *zerolog.Logger) (*Tree, error) {
	start := time.Now()
	tree, err := assemble(t, bounds, crb, gapb, log)
	size := 0
	if tree != nil {
		size = tree.all.Len()
	}
	metrics.RecordBuild(metrics.TreeUnified, time.Since(start), size, err)
	return tree, err
}

func assemble(t tables.Tables, bounds *dates.Range, crb *CRBuilder, gapb *GapBuilder, log *zerolog.Logger) (*Tree, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	cr, err := crb.Build(t.CR, bounds)
	if err != nil {
		return nil, err
	}
	gaps, err := gapb.Build(t.Gaps, bounds)
	if err != nil {
		return nil, err
	}

	all := cr.Union(gaps)
	if err := CheckIntegrity(all); err != nil {
		log.Error().Err(err).Msg("Status tables conflict")
		return nil, err
	}

	crDataStart, ok := t.CR.Earliest()
	if !ok {
		crDataStart = DefaultCRDataStart
	}

	log.Debug().
		Int("cr_records", cr.Len()).
		Int("gap_records", gaps.Len()).
		Int("records", all.Len()).
		Msg("Built unified status tree")

	var kept *dates.Range
	if bounds != nil {
		b := *bounds
		kept = &b
	}

	return &Tree{
		cr:          cr,
		gaps:        gaps,
		all:         all,
		bounds:      kept,
		crDataStart: crDataStart,
	}, nil
}

// CheckIntegrity reports the first pair of overlapping records that give
// a shared department different statuses.
func CheckIntegrity(tree *intervals.Tree) error {
	for _, r := range tree.Records() {
		for _, o := range tree.Overlap(r.Start, r.End) {
			if o == r || o.Status == r.Status {
				continue
			}
			shared := r.Departments.Intersect(o.Departments)
			if shared.IsEmpty() {
				continue
			}
			day := max(r.Start, o.Start)
			return errors.NewIntegrityError(
				shared.Members()[0].String(),
				day.String(),
				"conflicting statuses",
				r.Kind.String(), o.Kind.String(),
			)
		}
	}
	return nil
}

// CR returns the continuing resolution sub-tree.
func (t *Tree) CR() *intervals.Tree { return t.cr }

// Gaps returns the appropriations gap sub-tree.
func (t *Tree) Gaps() *intervals.Tree { return t.gaps }

// All returns the union of both sub-trees.
func (t *Tree) All() *intervals.Tree { return t.all }

// At returns every record covering day.
func (t *Tree) At(day dates.Day) []intervals.Record {
	return t.all.At(day)
}

// Bounds returns the range the tree was built for, or nil.
func (t *Tree) Bounds() *dates.Range {
	if t.bounds == nil {
		return nil
	}
	b := *t.bounds
	return &b
}

// CRDataStart returns the first day with continuing resolution data.
// Days before it cannot be told apart between CR and full funding.
func (t *Tree) CRDataStart() dates.Day {
	return t.crDataStart
}
