package calendar

import (
	"slices"
	"time"
)

// wallClock returns the wall-clock fields of t as a UTC time, which has no
// offset transitions.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), time.UTC)
}

func sameOffset(a, b time.Time) bool {
	_, x := a.Zone()
	_, y := b.Zone()
	return x == y
}

// aligned reports whether the fields of t less significant than f are zero
// in loc.
func aligned(t time.Time, loc *time.Location, f Field) bool {
	return elapsed(newMoment(t, loc), f) == 0
}

// instants returns the instants showing the wall clock in loc: none in a
// skipped interval, two in a repeated one.
func instants(wall time.Time, loc *time.Location) []time.Time {
	var result []time.Time
	for _, probe := range [...]time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, offset := wall.Add(probe).In(loc).Zone()
		t := wall.Add(-time.Duration(offset) * time.Second)
		if wallClock(t.In(loc)).Equal(wall) && !slices.ContainsFunc(result, t.Equal) {
			result = append(result, t)
		}
	}
	return result
}

// clockFloor returns the latest instant not after t whose fields less
// significant than f are zero in loc.
func clockFloor(t time.Time, loc *time.Location, f Field) time.Time {
	m := newMoment(t, loc)
	wall := wallClock(m.t).Add(-elapsed(m, f))
	var floor time.Time
	found := false
	for i := 0; i < 3; i++ {
		for _, candidate := range instants(wall, loc) {
			if !candidate.After(t) && (!found || candidate.After(floor)) {
				floor, found = candidate, true
			}
		}
		wall = wall.Add(-f.Duration())
	}
	if !found {
		return t.Add(-elapsed(m, f))
	}
	return floor
}

// clockNext returns the earliest instant after the boundary t whose fields
// less significant than f are zero in loc.
func clockNext(t time.Time, loc *time.Location, f Field) time.Time {
	wall := wallClock(t.In(loc))
	var next time.Time
	found := false
	for i := 0; i < 3; i++ {
		for _, candidate := range instants(wall, loc) {
			if candidate.After(t) && (!found || candidate.Before(next)) {
				next, found = candidate, true
			}
		}
		wall = wall.Add(f.Duration())
	}
	if !found {
		return t.Add(f.Duration())
	}
	return next
}
