package csm

import "time"

var _ csmNode = (*DayNode)(nil)

// DayNode holds the day of month, whose maximum depends on the month and
// the year.
type DayNode struct {
	value int
	month csmNode
	year  csmNode
}

// NewDayNode returns a new DayNode bound to the given month and year nodes.
func NewDayNode(value int, month, year csmNode) *DayNode {
	return &DayNode{
		value: value,
		month: month,
		year:  year,
	}
}

func (n *DayNode) Value() int {
	return n.value
}

func (n *DayNode) Reset() {
	n.value = 1
}

func (n *DayNode) Next() (overflowed bool) {
	n.value++
	if n.value > n.max() {
		n.value = 1
		return true
	}
	return false
}

// max returns the number of days in the current month.
func (n *DayNode) max() int {
	return lastDayOfMonth(n.year.Value(), n.month.Value())
}

func lastDayOfMonth(year, month int) int {
	firstDayOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return firstDayOfMonth.AddDate(0, 1, -1).Day()
}
