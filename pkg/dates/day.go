// Package dates converts calendar inputs to the day offsets the status
// tree is indexed by, and intersects intervals with optional bounding ranges.
//
// A Day counts whole days since 1970-01-01. Offsets are calendar based:
// a time.Time contributes its year, month and day in its own location,
// never its instant, so 2013-10-01T23:00-04:00 is day 15979 everywhere.
package dates

import (
	"time"

	"github.com/psuedomagi/fedcal/pkg/constants"
)

const secondsPerDay = 24 * 60 * 60

// Day is a day offset from 1970-01-01.
type Day int

// FromTime returns the day offset of t's calendar date.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return FromDate(y, m, d)
}

// FromDate returns the day offset of a calendar date. Out of range
// months and days normalize the way time.Date does.
func FromDate(year int, month time.Month, day int) Day {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day(midnight.Unix() / secondsPerDay)
}

// Today returns the current local calendar date.
func Today() Day {
	return FromTime(time.Now())
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// Add returns the day n days later.
func (d Day) Add(n int) Day {
	return d + Day(n)
}

// String formats the day as 2006-01-02.
func (d Day) String() string {
	return d.Time().Format(constants.DateLayout)
}

// MarshalText renders the day as a calendar date.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses any string form Normalize accepts.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := Normalize(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
