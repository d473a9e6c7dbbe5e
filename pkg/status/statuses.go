package status

import (
	"github.com/psuedomagi/fedcal/pkg/depts"
)

// Statuses maps each department to its status on one day.
type Statuses map[depts.Department]Tuple

// Departments returns the departments present, in canonical order.
func (s Statuses) Departments() []depts.Department {
	out := make([]depts.Department, 0, len(s))
	for _, d := range depts.List() {
		if _, ok := s[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Set returns the departments present as a depts.Set.
func (s Statuses) Set() depts.Set {
	var set depts.Set
	for d := range s {
		set = set.Add(d)
	}
	return set
}

// Equal reports whether both maps hold the same departments with the
// same tuples.
func (s Statuses) Equal(o Statuses) bool {
	if len(s) != len(o) {
		return false
	}
	for d, t := range s {
		if ot, ok := o[d]; !ok || ot != t {
			return false
		}
	}
	return true
}

func (s Statuses) all(pred func(Tuple) bool) bool {
	if len(s) == 0 {
		return false
	}
	for _, t := range s {
		if !pred(t) {
			return false
		}
	}
	return true
}

func (s Statuses) any(pred func(Tuple) bool) bool {
	for _, t := range s {
		if pred(t) {
			return true
		}
	}
	return false
}

func is(k Kind) func(Tuple) bool {
	want := k.Tuple()
	return func(t Tuple) bool { return t == want }
}

// AllFullyAppropriated reports whether every department has full-year
// appropriations.
func (s Statuses) AllFullyAppropriated() bool { return s.all(is(Default)) }

// AllCR reports whether every department is under a continuing resolution.
func (s Statuses) AllCR() bool { return s.all(is(ContinuingResolution)) }

// AllFunded reports whether every department has full-year appropriations
// or a continuing resolution. Cutoff defaults do not count, since the
// data cannot say which of the two held.
func (s Statuses) AllFunded() bool {
	full, cr := is(Default), is(ContinuingResolution)
	return s.all(func(t Tuple) bool { return full(t) || cr(t) })
}

// AllUnfunded reports whether every department lacks appropriations.
func (s Statuses) AllUnfunded() bool {
	return s.all(func(t Tuple) bool { return !t.IsFunded() })
}

// AnyCR reports whether some department is under a continuing resolution.
func (s Statuses) AnyCR() bool { return s.any(is(ContinuingResolution)) }

// AnyShutdown reports whether some department is shut down.
func (s Statuses) AnyShutdown() bool { return s.any(is(Shutdown)) }

// AnyGap reports whether some department is in an appropriations gap
// without a shutdown.
func (s Statuses) AnyGap() bool { return s.any(is(AppropriationsGap)) }

// AnyUnfunded reports whether some department lacks appropriations.
func (s Statuses) AnyUnfunded() bool {
	return s.any(func(t Tuple) bool { return !t.IsFunded() })
}

// Counts returns how many departments hold each kind.
func (s Statuses) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, t := range s {
		if k, ok := t.Kind(); ok {
			counts[k]++
		}
	}
	return counts
}
