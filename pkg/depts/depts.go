// Package depts enumerates the executive departments tracked by fedcal
// and provides an immutable set type over them.
package depts

import (
	"strings"
	"time"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// Department identifies one executive department or grouping.
type Department string

// Departments, in canonical order.
const (
	DHS  Department = "DHS"
	DOC  Department = "DOC"
	DOD  Department = "DOD"
	DOE  Department = "DOE"
	DOI  Department = "DOI"
	DOJ  Department = "DOJ"
	DOL  Department = "DOL"
	DOS  Department = "DOS"
	DOT  Department = "DOT"
	ED   Department = "ED"
	HHS  Department = "HHS"
	HUD  Department = "HUD"
	IA   Department = "IA"
	PRES Department = "PRES"
	USDA Department = "USDA"
	USDT Department = "USDT"
	VA   Department = "VA"
)

// DHSFormed is the day the Department of Homeland Security came into
// existence. DHS has no status on earlier days.
var DHSFormed = dates.FromDate(2002, time.November, 25)

type info struct {
	abbrev string
	full   string
	short  string
	formed *dates.Day
}

var ordered = []Department{DHS, DOC, DOD, DOE, DOI, DOJ, DOL, DOS, DOT, ED, HHS, HUD, IA, PRES, USDA, USDT, VA}

var registry = map[Department]info{
	DHS:  {abbrev: "DHS", full: "Department of Homeland Security", short: "Homeland Security", formed: &DHSFormed},
	DOC:  {abbrev: "DoC", full: "Department of Commerce", short: "Commerce"},
	DOD:  {abbrev: "DoD", full: "Department of Defense", short: "Defense"},
	DOE:  {abbrev: "DoE", full: "Department of Energy", short: "Energy"},
	DOI:  {abbrev: "DoI", full: "Department of the Interior", short: "Interior"},
	DOJ:  {abbrev: "DoJ", full: "Department of Justice", short: "Justice"},
	DOL:  {abbrev: "DoL", full: "Department of Labor", short: "Labor"},
	DOS:  {abbrev: "DoS", full: "Department of State", short: "State"},
	DOT:  {abbrev: "DoT", full: "Department of Transportation", short: "Transportation"},
	ED:   {abbrev: "ED", full: "Department of Education", short: "Education"},
	HHS:  {abbrev: "HHS", full: "Department of Health and Human Services", short: "Health and Human Services"},
	HUD:  {abbrev: "HUD", full: "Department of Housing and Urban Development", short: "Housing and Urban Development"},
	IA:   {abbrev: "IA", full: "Independent Agencies", short: "Independent Agencies"},
	PRES: {abbrev: "PRES", full: "Executive Office of the President", short: "Office of the President"},
	USDA: {abbrev: "USDA", full: "Department of Agriculture", short: "Agriculture"},
	USDT: {abbrev: "USDT", full: "Department of the Treasury", short: "Treasury"},
	VA:   {abbrev: "VA", full: "Department of Veterans Affairs", short: "Veterans Affairs"},
}

// index maps each department to its bit in a Set.
var index = func() map[Department]uint {
	m := make(map[Department]uint, len(ordered))
	for i, d := range ordered {
		m[d] = uint(i)
	}
	return m
}()

// List returns every department in canonical order.
func List() []Department {
	out := make([]Department, len(ordered))
	copy(out, ordered)
	return out
}

// Valid reports whether d is a known department.
func (d Department) Valid() bool {
	_, ok := registry[d]
	return ok
}

// Abbrev returns the conventional abbreviation, e.g. "DoD".
func (d Department) Abbrev() string { return registry[d].abbrev }

// FullName returns the formal name, e.g. "Department of Defense".
func (d Department) FullName() string { return registry[d].full }

// ShortName returns the short name, e.g. "Defense".
func (d Department) ShortName() string { return registry[d].short }

// String returns the department identifier.
func (d Department) String() string { return string(d) }

// Formed returns the first day the department exists and whether it
// has a formation date at all. Departments without one are active on
// every day of the timeline.
func (d Department) Formed() (dates.Day, bool) {
	f := registry[d].formed
	if f == nil {
		return 0, false
	}
	return *f, true
}

// ActiveOn reports whether the department exists on day.
func (d Department) ActiveOn(day dates.Day) bool {
	formed, ok := d.Formed()
	return !ok || day >= formed
}

// Parse resolves a department from its identifier, abbreviation, full
// name or short name, ignoring case and surrounding space.
func Parse(s string) (Department, error) {
	key := strings.TrimSpace(s)
	for _, d := range ordered {
		i := registry[d]
		if strings.EqualFold(key, string(d)) ||
			strings.EqualFold(key, i.abbrev) ||
			strings.EqualFold(key, i.full) ||
			strings.EqualFold(key, i.short) {
			return d, nil
		}
	}
	return "", errors.NewNotFoundError("department", s)
}

// ParseAll resolves each name with Parse and returns them as a Set.
func ParseAll(names ...string) (Set, error) {
	var set Set
	for _, name := range names {
		d, err := Parse(name)
		if err != nil {
			return Set{}, err
		}
		set = set.Add(d)
	}
	return set, nil
}

// ActiveOn returns the set of departments that exist on day.
func ActiveOn(day dates.Day) Set {
	var set Set
	for _, d := range ordered {
		if d.ActiveOn(day) {
			set = set.Add(d)
		}
	}
	return set
}
