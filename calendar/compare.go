package calendar

// IsSameDay reports whether a and b have the same year and day of year,
// each decomposed in its own location. The time of day is ignored.
func (c *Calendar) IsSameDay(a, b Moment) (bool, error) {
	if err := c.present(a, b); err != nil {
		c.record("isSameDay", a, Day, nil, err)
		return false, err
	}
	return a.Year() == b.Year() && a.YearDay() == b.YearDay(), nil
}

// IsSameInstant reports whether a and b denote the same instant,
// regardless of their locations.
func (c *Calendar) IsSameInstant(a, b Moment) (bool, error) {
	if err := c.present(a, b); err != nil {
		c.record("isSameInstant", a, Millisecond, nil, err)
		return false, err
	}
	return a.t.Equal(b.t), nil
}

// IsSameLocalTime reports whether every field of a and b, from the year to
// the millisecond, is equal. The locations are ignored, so that moments of
// different instants in different locations may have the same local time.
func (c *Calendar) IsSameLocalTime(a, b Moment) (bool, error) {
	if err := c.present(a, b); err != nil {
		c.record("isSameLocalTime", a, Millisecond, nil, err)
		return false, err
	}
	for _, f := range Fields() {
		if a.Get(f) != b.Get(f) {
			return false, nil
		}
	}
	return true, nil
}

// TruncatedEquals reports whether a and b denote the same instant once
// truncated to f.
func (c *Calendar) TruncatedEquals(a, b Moment, f Field) (bool, error) {
	cmp, err := c.TruncatedCompare(a, b, f)
	return cmp == 0 && err == nil, err
}

// TruncatedCompare compares a and b once truncated to f. It returns -1, 0
// or +1 depending on whether a is before, at or after b.
func (c *Calendar) TruncatedCompare(a, b Moment, f Field) (int, error) {
	if err := c.present(a, b); err != nil {
		c.record("truncatedCompare", a, f, nil, err)
		return 0, err
	}
	ta, err := c.Truncate(a, f)
	if err != nil {
		return 0, err
	}
	tb, err := c.Truncate(b, f)
	if err != nil {
		return 0, err
	}
	return ta.Compare(tb), nil
}

func (c *Calendar) present(a, b Moment) error {
	if a.IsZero() {
		return c.nullArgumentError("first moment")
	}
	if b.IsZero() {
		return c.nullArgumentError("second moment")
	}
	return nil
}
