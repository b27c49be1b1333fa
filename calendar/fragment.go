package calendar

import "time"

const dayDuration = 24 * time.Hour

// Fragment returns the time elapsed within the fragment field of m, that is
// the part of m carried by all the fields less significant than fragment,
// expressed as a whole number of units. The unit must be Day or finer and
// the fragment must not be less significant than the unit.
func (c *Calendar) Fragment(m Moment, fragment, unit Field) (int64, error) {
	result, err := c.fragment(m, fragment, unit)
	c.record("fragment", m, fragment, result, err)
	return result, err
}

func (c *Calendar) fragment(m Moment, fragment, unit Field) (int64, error) {
	if m.IsZero() {
		return 0, c.nullArgumentError("moment")
	}
	if !fragment.Valid() {
		return 0, c.invalidFieldError(fragment)
	}
	if !unit.Valid() || unit.Coarser(Day) || fragment.Finer(unit) {
		return 0, c.fragmentError(fragment, unit)
	}
	return int64(elapsed(m, fragment) / unitDuration(unit)), nil
}

// FragmentInDays returns the number of days within the fragment. Days are
// counted as elapsed time, so the first day of a month or a year is 0.
func (c *Calendar) FragmentInDays(m Moment, fragment Field) (int64, error) {
	return c.Fragment(m, fragment, Day)
}

// FragmentInHours returns the number of hours within the fragment.
func (c *Calendar) FragmentInHours(m Moment, fragment Field) (int64, error) {
	return c.Fragment(m, fragment, HourOfDay)
}

// FragmentInMinutes returns the number of minutes within the fragment.
func (c *Calendar) FragmentInMinutes(m Moment, fragment Field) (int64, error) {
	return c.Fragment(m, fragment, Minute)
}

// FragmentInSeconds returns the number of seconds within the fragment.
func (c *Calendar) FragmentInSeconds(m Moment, fragment Field) (int64, error) {
	return c.Fragment(m, fragment, Second)
}

// FragmentInMilliseconds returns the number of milliseconds within the fragment.
func (c *Calendar) FragmentInMilliseconds(m Moment, fragment Field) (int64, error) {
	return c.Fragment(m, fragment, Millisecond)
}

func unitDuration(unit Field) time.Duration {
	if unit == Day {
		return dayDuration
	}
	return unit.Duration()
}

// elapsed sums the wall-clock fields of m less significant than f, counting
// days as 24 hours.
func elapsed(m Moment, f Field) time.Duration {
	var d time.Duration
	switch f {
	case Year:
		d += time.Duration(m.YearDay()-1) * dayDuration
	case Month:
		d += time.Duration(m.Day()-1) * dayDuration
	}
	if f.Coarser(HourOfDay) {
		d += time.Duration(m.Hour()) * time.Hour
	}
	if f.Coarser(Minute) {
		d += time.Duration(m.Minute()) * time.Minute
	}
	if f.Coarser(Second) {
		d += time.Duration(m.Second()) * time.Second
	}
	if f.Coarser(Millisecond) {
		d += time.Duration(m.Millisecond()) * time.Millisecond
	}
	return d
}
