package csm

import "time"

// NodeID identifies a field node, from the most significant to the least.
type NodeID int

const (
	Years NodeID = iota
	Months
	Days
	Hours
	Minutes
	Seconds
	Millis
)

// CalendarStateMachine is a date-time decomposed into field nodes.
type CalendarStateMachine struct {
	year  *YearNode
	nodes []csmNode
}

// NewCalendarStateMachine decomposes t, in its own location, into a state
// machine whose year may not exceed maxYear in absolute value.
func NewCalendarStateMachine(t time.Time, maxYear int) *CalendarStateMachine {
	year := NewYearNode(t.Year(), maxYear)
	month := NewCommonNode(int(t.Month()), 1, 12)
	day := NewDayNode(t.Day(), month, year)
	return &CalendarStateMachine{
		year: year,
		nodes: []csmNode{
			year,
			month,
			day,
			NewCommonNode(t.Hour(), 0, 23),
			NewCommonNode(t.Minute(), 0, 59),
			NewCommonNode(t.Second(), 0, 59),
			NewCommonNode(t.Nanosecond()/int(time.Millisecond), 0, 999),
		},
	}
}

// Get returns the value of the node.
func (csm *CalendarStateMachine) Get(id NodeID) int {
	return csm.nodes[id].Value()
}

// InBounds reports whether the year is within the configured bound.
func (csm *CalendarStateMachine) InBounds() bool {
	return csm.year.InBounds()
}

// ResetBelow sets every node less significant than id to its minimum value.
func (csm *CalendarStateMachine) ResetBelow(id NodeID) {
	for i := int(id) + 1; i < len(csm.nodes); i++ {
		csm.nodes[i].Reset()
	}
}

// Advance increments the node by one, carrying into more significant nodes.
// It returns true if the year overflowed its bound.
func (csm *CalendarStateMachine) Advance(id NodeID) (overflowed bool) {
	for i := id; i >= Years; i-- {
		if !csm.nodes[i].Next() {
			return false
		}
	}
	return true
}

// Value composes the node values into a time in the given location.
func (csm *CalendarStateMachine) Value(loc *time.Location) time.Time {
	return time.Date(
		csm.Get(Years),
		time.Month(csm.Get(Months)),
		csm.Get(Days),
		csm.Get(Hours),
		csm.Get(Minutes),
		csm.Get(Seconds),
		csm.Get(Millis)*int(time.Millisecond),
		loc,
	)
}
