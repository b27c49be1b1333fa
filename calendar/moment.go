package calendar

import (
	"time"
)

const momentLayout = "2006-01-02T15:04:05.000Z07:00"

// Moment is an immutable point in time at millisecond precision, decomposed
// into calendar fields under its location. The zero value is an absent
// Moment, rejected by every operation with [ErrNullArgument].
type Moment struct {
	t   time.Time
	loc *time.Location
}

// FromEpochMilli returns the Moment ms milliseconds after the Unix epoch,
// decomposed in loc. A nil loc selects UTC.
func FromEpochMilli(ms int64, loc *time.Location) Moment {
	return newMoment(time.UnixMilli(ms), loc)
}

// newMoment drops the sub-millisecond part of t.
func newMoment(t time.Time, loc *time.Location) Moment {
	if loc == nil {
		loc = time.UTC
	}
	return Moment{
		t:   t.Truncate(time.Millisecond).In(loc),
		loc: loc,
	}
}

// IsZero reports whether m is absent.
func (m Moment) IsZero() bool {
	return m.loc == nil
}

// Time returns the moment as a time.Time in the moment's location.
func (m Moment) Time() time.Time {
	return m.t
}

// Location returns the location the moment is decomposed in.
func (m Moment) Location() *time.Location {
	return m.loc
}

// EpochMilli returns the number of milliseconds elapsed since the Unix epoch.
// The result is undefined if the moment is beyond the int64 range.
func (m Moment) EpochMilli() int64 {
	return m.t.UnixMilli()
}

// In returns the same instant decomposed in loc.
func (m Moment) In(loc *time.Location) Moment {
	return newMoment(m.t, loc)
}

func (m Moment) Year() int        { return m.t.Year() }
func (m Moment) Month() int       { return int(m.t.Month()) }
func (m Moment) Day() int         { return m.t.Day() }
func (m Moment) YearDay() int     { return m.t.YearDay() }
func (m Moment) Hour() int        { return m.t.Hour() }
func (m Moment) Minute() int      { return m.t.Minute() }
func (m Moment) Second() int      { return m.t.Second() }
func (m Moment) Millisecond() int { return m.t.Nanosecond() / int(time.Millisecond) }

// Get returns the value of the field, or -1 if the field is not supported.
func (m Moment) Get(f Field) int {
	switch f {
	case Year:
		return m.Year()
	case Month:
		return m.Month()
	case Day:
		return m.Day()
	case HourOfDay:
		return m.Hour()
	case Minute:
		return m.Minute()
	case Second:
		return m.Second()
	case Millisecond:
		return m.Millisecond()
	}
	return -1
}

// ActualMaximum returns the largest value the field can take given the
// moment's month and year.
func (m Moment) ActualMaximum(f Field) int {
	if f == Day {
		first := time.Date(m.Year(), m.t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first.AddDate(0, 1, -1).Day()
	}
	_, max := f.Range()
	return max
}

// Compare returns -1, 0 or +1 depending on whether m is before, at or after
// other in absolute-instant order.
func (m Moment) Compare(other Moment) int {
	return m.t.Compare(other.t)
}

// Before reports whether m is before other.
func (m Moment) Before(other Moment) bool {
	return m.t.Before(other.t)
}

// After reports whether m is after other.
func (m Moment) After(other Moment) bool {
	return m.t.After(other.t)
}

func (m Moment) String() string {
	if m.IsZero() {
		return "<absent>"
	}
	return m.t.Format(momentLayout)
}
