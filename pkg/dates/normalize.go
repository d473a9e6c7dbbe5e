package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/psuedomagi/fedcal/pkg/constants"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// YearMonthDay is an explicit calendar date.
type YearMonthDay struct {
	Year  int
	Month time.Month
	Day   int
}

// Offset converts the date to a day offset, rejecting dates that do not
// exist on the calendar (February 30th and the like).
func (ymd YearMonthDay) Offset() (Day, error) {
	t := time.Date(ymd.Year, ymd.Month, ymd.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != ymd.Year || t.Month() != ymd.Month || t.Day() != ymd.Day {
		return 0, errors.NewConversionError(ymd, "no such calendar date", nil)
	}
	return FromTime(t), nil
}

// String formats the date as 2006-01-02.
func (ymd YearMonthDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", ymd.Year, int(ymd.Month), ymd.Day)
}

// Normalize converts a date value to a day offset. Accepted inputs are
// Day and int (already offsets, returned unchanged), time.Time, utc.Time,
// pointers to either, YearMonthDay, and strings in 2006-01-02,
// 01/02/2006 or RFC 3339 form. Any other input is an invalid-input error.
func Normalize(v any) (Day, error) {
	switch x := v.(type) {
	case Day:
		return x, nil
	case int:
		return Day(x), nil
	case time.Time:
		return fromTimeValue(v, x)
	case *time.Time:
		if x == nil {
			return 0, errors.NewConversionError(v, "nil time", nil)
		}
		return fromTimeValue(v, *x)
	case utc.Time:
		return fromTimeValue(v, x.Time)
	case *utc.Time:
		if x == nil {
			return 0, errors.NewConversionError(v, "nil time", nil)
		}
		return fromTimeValue(v, x.Time)
	case YearMonthDay:
		return x.Offset()
	case string:
		return parseString(x)
	case nil:
		return 0, errors.NewConversionError(v, "no date given", nil)
	default:
		return 0, errors.NewConversionError(v, "unsupported date type", nil)
	}
}

// MustNormalize is like Normalize but panics on error. It is meant for
// package-level constants built from literals.
func MustNormalize(v any) Day {
	d, err := Normalize(v)
	if err != nil {
		panic(err)
	}
	return d
}

func fromTimeValue(original any, t time.Time) (Day, error) {
	if t.IsZero() {
		return 0, errors.NewConversionError(original, "zero time", nil)
	}
	return FromTime(t), nil
}

func parseString(s string) (Day, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errors.NewConversionError(s, "empty date string", nil)
	}

	var lastErr error
	for _, layout := range []string{constants.DateLayout, constants.USDateLayout, time.RFC3339} {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return FromTime(t), nil
		}
		lastErr = err
	}
	return 0, errors.NewConversionError(s, "unparseable date string", lastErr)
}
