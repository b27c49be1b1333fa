package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/reugn/go-calendar/catalog"
	"github.com/reugn/go-calendar/internal/csm"
)

// Field is a calendar granularity. Fields are totally ordered, Year being
// the most significant and Millisecond the least.
type Field int

const (
	Year Field = iota
	Month
	Day
	HourOfDay
	Minute
	Second
	Millisecond
)

var fieldNames = [...]string{
	Year:        "YEAR",
	Month:       "MONTH",
	Day:         "DAY",
	HourOfDay:   "HOUR_OF_DAY",
	Minute:      "MINUTE",
	Second:      "SECOND",
	Millisecond: "MILLISECOND",
}

var fieldAliases = map[string]Field{
	"HOUR":   HourOfDay,
	"DATE":   Day,
	"MS":     Millisecond,
	"MILLIS": Millisecond,
}

// Fields returns all the supported fields, from the most significant.
func Fields() []Field {
	return []Field{Year, Month, Day, HourOfDay, Minute, Second, Millisecond}
}

// ParseField returns the field with the given case-insensitive name.
func ParseField(name string) (Field, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for f, fieldName := range fieldNames {
		if fieldName == upper {
			return Field(f), nil
		}
	}
	if f, ok := fieldAliases[upper]; ok {
		return f, nil
	}
	return -1, newError(catalog.Default(), ErrInvalidField, catalog.InvalidField,
		fmt.Sprintf("unknown field name %q", name))
}

// Valid reports whether f is one of the supported fields.
func (f Field) Valid() bool {
	return f >= Year && f <= Millisecond
}

// Coarser reports whether f is more significant than other.
func (f Field) Coarser(other Field) bool {
	return f < other
}

// Finer reports whether f is less significant than other.
func (f Field) Finer(other Field) bool {
	return f > other
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FIELD(%d)", int(f))
	}
	return fieldNames[f]
}

// Range returns the natural unit range of the field. The maximum day of
// month is the largest over all months, see [Moment.ActualMaximum].
// Years, including zero and negative astronomical years, are bounded by
// [DefaultMaxYear] in absolute value; a Calendar may use a different bound,
// see [Calendar.MaxYear].
func (f Field) Range() (min, max int) {
	switch f {
	case Year:
		return -DefaultMaxYear, DefaultMaxYear
	case Month:
		return 1, 12
	case Day:
		return 1, 31
	case HourOfDay:
		return 0, 23
	case Minute, Second:
		return 0, 59
	case Millisecond:
		return 0, 999
	}
	return 0, 0
}

// Duration returns the fixed length of one unit of the field, or zero for
// the fields whose length depends on the calendar.
func (f Field) Duration() time.Duration {
	switch f {
	case HourOfDay:
		return time.Hour
	case Minute:
		return time.Minute
	case Second:
		return time.Second
	case Millisecond:
		return time.Millisecond
	}
	return 0
}

func (f Field) node() csm.NodeID {
	return csm.NodeID(f)
}
