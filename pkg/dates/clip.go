package dates

import (
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// Range is an inclusive span of days. Start equal to End is a single day.
type Range struct {
	Start Day `json:"start" yaml:"start"`
	End   Day `json:"end" yaml:"end"`
}

// NewRange normalizes both bounds independently and rejects a start
// after the end.
func NewRange(start, end any) (Range, error) {
	s, err := Normalize(start)
	if err != nil {
		return Range{}, err
	}
	e, err := Normalize(end)
	if err != nil {
		return Range{}, err
	}
	if s > e {
		return Range{}, errors.NewValidationError("range", Range{Start: s, End: e}, "start "+s.String()+" is after end "+e.String())
	}
	return Range{Start: s, End: e}, nil
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d Day) bool {
	return d >= r.Start && d <= r.End
}

// Days returns the number of days covered.
func (r Range) Days() int {
	return int(r.End-r.Start) + 1
}

// String formats the range as start..end.
func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// Clip intersects the inclusive interval [start, end] with bounds. A nil
// bounds means no restriction and returns the interval unchanged. The
// boolean is false only when the two are disjoint; intervals that share
// a single boundary day overlap on that day.
func Clip(start, end Day, bounds *Range) (Range, bool) {
	if bounds == nil {
		return Range{Start: start, End: end}, true
	}
	if end < bounds.Start || start > bounds.End {
		return Range{}, false
	}
	return Range{Start: max(start, bounds.Start), End: min(end, bounds.End)}, true
}
