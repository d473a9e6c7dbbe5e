package statustree

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/psuedomagi/fedcal/internal/metrics"
	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/intervals"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/status"
	"github.com/psuedomagi/fedcal/pkg/tables"
)

// CRBuilder turns the continuing resolution table into an interval tree.
// The table lists departments excluded from each resolution; the builder
// inverts it so each record names the departments that were under the CR.
//
// A builder builds once. Later calls return the first tree regardless of
// their arguments.
type CRBuilder struct {
	mu     sync.Mutex
	tree   *intervals.Tree
	logger *zerolog.Logger
}

// Build returns the CR tree, building it from table on the first call.
// Entries disjoint from bounds are skipped. The rest keep their source
// span, so a record may reach past bounds. A nil bounds keeps every entry.
func (b *CRBuilder) Build(table tables.CRTable, bounds *dates.Range) (*intervals.Tree, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tree != nil {
		return b.tree, nil
	}

	start := time.Now()
	records := make([]intervals.Record, 0, len(table))
	for _, e := range table {
		if _, ok := dates.Clip(e.Start, e.End, bounds); !ok {
			continue
		}

		included := depts.All().Difference(e.Excluded)
		if e.End < depts.DHSFormed {
			included = included.Remove(depts.DHS)
		}
		if included.IsEmpty() {
			orDefault(b.logger).Debug().Str("start", e.Start.String()).Msg("Skipping continuing resolution that excludes every department")
			continue
		}

		records = append(records, intervals.Record{
			Start:       e.Start,
			End:         e.End + 1,
			Departments: included,
			Status:      status.ContinuingResolution.Tuple(),
			Kind:        status.ContinuingResolution,
		})
	}

	tree, err := intervals.New(records)
	metrics.RecordBuild(metrics.TreeCR, time.Since(start), tree.Len(), err)
	if err != nil {
		return nil, err
	}

	orDefault(b.logger).Debug().Int("entries", len(table)).Int("records", tree.Len()).Msg("Built continuing resolution tree")
	b.tree = tree
	return tree, nil
}

// Tree returns the built tree, or nil before the first Build.
func (b *CRBuilder) Tree() *intervals.Tree {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tree
}

// GapBuilder turns the appropriations gap table into an interval tree.
// Departments are used as listed; the shutdown flag picks SHUTDOWN over
// APPROPRIATIONS_GAP.
//
// Like CRBuilder, a GapBuilder builds once.
type GapBuilder struct {
	mu     sync.Mutex
	tree   *intervals.Tree
	logger *zerolog.Logger
}

// Build returns the gap tree, building it from table on the first call.
// Bounds apply as in CRBuilder.Build.
func (b *GapBuilder) Build(table tables.GapTable, bounds *dates.Range) (*intervals.Tree, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tree != nil {
		return b.tree, nil
	}

	start := time.Now()
	records := make([]intervals.Record, 0, len(table))
	for _, e := range table {
		if _, ok := dates.Clip(e.Start, e.End, bounds); !ok {
			continue
		}

		kind := status.AppropriationsGap
		if e.Shutdown {
			kind = status.Shutdown
		}

		records = append(records, intervals.Record{
			Start:       e.Start,
			End:         e.End + 1,
			Departments: e.Departments,
			Status:      kind.Tuple(),
			Kind:        kind,
		})
	}

	tree, err := intervals.New(records)
	metrics.RecordBuild(metrics.TreeGap, time.Since(start), tree.Len(), err)
	if err != nil {
		return nil, err
	}

	orDefault(b.logger).Debug().Int("entries", len(table)).Int("records", tree.Len()).Msg("Built appropriations gap tree")
	b.tree = tree
	return tree, nil
}

// Tree returns the built tree, or nil before the first Build.
func (b *GapBuilder) Tree() *intervals.Tree {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tree
}

func orDefault(logger *zerolog.Logger) *zerolog.Logger {
	if logger == nil {
		return logging.Default()
	}
	return logger
}
