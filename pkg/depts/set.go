package depts

import (
	"encoding/json"
	"math/bits"
	"strings"
)

// Set is an immutable set of departments. The zero value is empty and
// every operation returns a new Set.
type Set struct {
	bits uint32
}

// NewSet returns a set holding the given departments. Unknown
// departments are ignored.
func NewSet(ds ...Department) Set {
	var s Set
	for _, d := range ds {
		s = s.Add(d)
	}
	return s
}

// All returns the set of every department.
func All() Set {
	return NewSet(ordered...)
}

// Add returns s with d included.
func (s Set) Add(d Department) Set {
	i, ok := index[d]
	if !ok {
		return s
	}
	return Set{bits: s.bits | 1<<i}
}

// Remove returns s without d.
func (s Set) Remove(d Department) Set {
	i, ok := index[d]
	if !ok {
		return s
	}
	return Set{bits: s.bits &^ (1 << i)}
}

// Has reports whether d is in s.
func (s Set) Has(d Department) bool {
	i, ok := index[d]
	return ok && s.bits&(1<<i) != 0
}

// Union returns the departments in either set.
func (s Set) Union(o Set) Set { return Set{bits: s.bits | o.bits} }

// Intersect returns the departments in both sets.
func (s Set) Intersect(o Set) Set { return Set{bits: s.bits & o.bits} }

// Difference returns the departments in s but not in o.
func (s Set) Difference(o Set) Set { return Set{bits: s.bits &^ o.bits} }

// Overlaps reports whether the sets share any department.
func (s Set) Overlaps(o Set) bool { return s.bits&o.bits != 0 }

// SubsetOf reports whether every department in s is also in o.
func (s Set) SubsetOf(o Set) bool { return s.bits&^o.bits == 0 }

// Len returns the number of departments in s.
func (s Set) Len() int { return bits.OnesCount32(s.bits) }

// IsEmpty reports whether s has no departments.
func (s Set) IsEmpty() bool { return s.bits == 0 }

// Members returns the departments in canonical order.
func (s Set) Members() []Department {
	out := make([]Department, 0, s.Len())
	for _, d := range ordered {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Strings returns the department identifiers in canonical order.
func (s Set) Strings() []string {
	members := s.Members()
	out := make([]string, len(members))
	for i, d := range members {
		out[i] = string(d)
	}
	return out
}

// String formats the set as {DHS, DOC}.
func (s Set) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}

// MarshalJSON encodes the set as a list of identifiers.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes a list of department names.
func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseAll(names...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the set as a list of identifiers.
func (s Set) MarshalYAML() (any, error) {
	return s.Strings(), nil
}
