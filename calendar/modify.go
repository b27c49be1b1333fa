package calendar

import (
	"github.com/reugn/go-calendar/internal/csm"
)

// Truncate returns m with every field less significant than f set to its
// minimum value.
func (c *Calendar) Truncate(m Moment, f Field) (Moment, error) {
	result, err := c.floor(m, f)
	c.record("truncate", m, f, result, err)
	return result, err
}

// Ceiling returns the earliest moment not before m whose fields less
// significant than f are at their minimum value.
func (c *Calendar) Ceiling(m Moment, f Field) (Moment, error) {
	result, err := c.ceiling(m, f)
	c.record("ceiling", m, f, result, err)
	return result, err
}

// Round returns the field boundary closest to m, either Truncate(m, f) or
// the following boundary. A moment exactly half-way is rounded up.
func (c *Calendar) Round(m Moment, f Field) (Moment, error) {
	result, err := c.round(m, f)
	c.record("round", m, f, result, err)
	return result, err
}

func (c *Calendar) validate(m Moment, f Field) error {
	if m.IsZero() {
		return c.nullArgumentError("moment")
	}
	if !f.Valid() {
		return c.invalidFieldError(f)
	}
	if !c.inBounds(m.Year()) {
		return c.overflowError(m.Year())
	}
	return nil
}

func (c *Calendar) inBounds(year int) bool {
	return year <= c.maxYear && year >= -c.maxYear
}

func (c *Calendar) floor(m Moment, f Field) (Moment, error) {
	if err := c.validate(m, f); err != nil {
		return Moment{}, err
	}
	return c.truncate(m, f), nil
}

// truncate expects m and f to be validated.
// Fields less significant than the hour are removed by subtracting their
// wall-clock amount from the instant, so that moments in a repeated hour of
// a daylight saving transition stay in that hour. Offset changes that are
// not whole units of f fall back to clockFloor.
func (c *Calendar) truncate(m Moment, f Field) Moment {
	if !f.Coarser(HourOfDay) {
		t := m.t.Add(-elapsed(m, f))
		if sameOffset(t, m.t) && aligned(t, m.loc, f) {
			return newMoment(t, m.loc)
		}
		return newMoment(clockFloor(m.t, m.loc, f), m.loc)
	}
	machine := csm.NewCalendarStateMachine(m.t, c.maxYear)
	machine.ResetBelow(f.node())
	return newMoment(machine.Value(m.loc), m.loc)
}

// advance returns the boundary one unit of f after the truncated moment t.
func (c *Calendar) advance(t Moment, f Field) (Moment, error) {
	if d := f.Duration(); d > 0 {
		next := t.t.Add(d)
		if !sameOffset(t.t, next) || !aligned(next, t.loc, f) {
			next = clockNext(t.t, t.loc, f)
		}
		return c.checkBounds(newMoment(next, t.loc))
	}
	machine := csm.NewCalendarStateMachine(t.t, c.maxYear)
	if machine.Advance(f.node()) {
		return Moment{}, c.overflowError(machine.Get(csm.Years))
	}
	return newMoment(machine.Value(t.loc), t.loc), nil
}

func (c *Calendar) checkBounds(next Moment) (Moment, error) {
	if !c.inBounds(next.Year()) {
		return Moment{}, c.overflowError(next.Year())
	}
	return next, nil
}

func (c *Calendar) ceiling(m Moment, f Field) (Moment, error) {
	t, err := c.floor(m, f)
	if err != nil {
		return Moment{}, err
	}
	if t.t.Equal(m.t) {
		return t, nil
	}
	return c.advance(t, f)
}

func (c *Calendar) round(m Moment, f Field) (Moment, error) {
	t, err := c.floor(m, f)
	if err != nil {
		return Moment{}, err
	}
	if t.t.Equal(m.t) {
		return t, nil
	}
	next, err := c.advance(t, f)
	if err != nil {
		return Moment{}, err
	}
	if 2*m.t.Sub(t.t) >= next.t.Sub(t.t) {
		return next, nil
	}
	return t, nil
}
