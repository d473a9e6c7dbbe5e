package resolver

import (
	"strings"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/intervals"
)

// Source selects which sub-tree Intervals reads.
type Source string

// Sources.
const (
	SourceAll Source = "all"
	SourceCR  Source = "cr"
	SourceGap Source = "gap"
)

// ParseSource parses a source name, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case SourceAll, SourceCR, SourceGap:
		return src, nil
	case "":
		return SourceAll, nil
	default:
		return "", errors.NewValidationError("source", s, "must be one of all, cr, gap")
	}
}

// Intervals lists the stored records from source that overlap the
// inclusive bounds, ordered by start. A nil bounds lists every record.
func (r *Resolver) Intervals(source Source, bounds *dates.Range) ([]intervals.Record, error) {
	tree, err := r.handle.Tree()
	if err != nil {
		return nil, err
	}

	var sub *intervals.Tree
	switch source {
	case SourceAll, "":
		sub = tree.All()
	case SourceCR:
		sub = tree.CR()
	case SourceGap:
		sub = tree.Gaps()
	default:
		return nil, errors.NewValidationError("source", source, "must be one of all, cr, gap")
	}

	if bounds == nil {
		return sub.Records(), nil
	}
	return sub.Overlap(bounds.Start, bounds.End+1), nil
}
