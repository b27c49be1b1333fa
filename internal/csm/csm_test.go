package csm_test

import (
	"testing"
	"time"

	"github.com/reugn/go-calendar/internal/assert"
	"github.com/reugn/go-calendar/internal/csm"
)

const layout = "2006-01-02T15:04:05.000Z07:00"

func parse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(layout, value)
	assert.IsNil(t, err)
	return ts
}

func TestResetBelow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		id       csm.NodeID
		expected string
	}{
		{csm.Years, "2024-01-01T00:00:00.000Z"},
		{csm.Months, "2024-02-01T00:00:00.000Z"},
		{csm.Days, "2024-02-29T00:00:00.000Z"},
		{csm.Hours, "2024-02-29T13:00:00.000Z"},
		{csm.Minutes, "2024-02-29T13:45:00.000Z"},
		{csm.Seconds, "2024-02-29T13:45:59.000Z"},
		{csm.Millis, "2024-02-29T13:45:59.999Z"},
	}
	for _, tt := range tests {
		machine := csm.NewCalendarStateMachine(parse(t, "2024-02-29T13:45:59.999Z"), 9999)
		machine.ResetBelow(tt.id)
		assert.Equal(t, machine.Value(time.UTC).Format(layout), tt.expected)
	}
}

func TestAdvanceCarry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from     string
		id       csm.NodeID
		expected string
	}{
		{"2024-02-28T00:00:00.000Z", csm.Days, "2024-02-29T00:00:00.000Z"},
		{"2024-02-29T00:00:00.000Z", csm.Days, "2024-03-01T00:00:00.000Z"},
		{"2023-02-28T00:00:00.000Z", csm.Days, "2023-03-01T00:00:00.000Z"},
		{"2023-12-31T00:00:00.000Z", csm.Days, "2024-01-01T00:00:00.000Z"},
		{"2023-12-01T00:00:00.000Z", csm.Months, "2024-01-01T00:00:00.000Z"},
		{"2023-12-31T23:59:59.999Z", csm.Millis, "2024-01-01T00:00:00.000Z"},
		{"2023-06-30T23:00:00.000Z", csm.Hours, "2023-07-01T00:00:00.000Z"},
		{"2023-01-01T00:00:00.000Z", csm.Years, "2024-01-01T00:00:00.000Z"},
	}
	for _, tt := range tests {
		machine := csm.NewCalendarStateMachine(parse(t, tt.from), 9999)
		assert.Equal(t, machine.Advance(tt.id), false)
		assert.Equal(t, machine.Value(time.UTC).Format(layout), tt.expected)
	}
}

func TestYearBound(t *testing.T) {
	t.Parallel()
	machine := csm.NewCalendarStateMachine(parse(t, "2030-12-31T10:00:00.000Z"), 2030)
	assert.Equal(t, machine.InBounds(), true)
	machine.ResetBelow(csm.Days)
	assert.Equal(t, machine.Advance(csm.Days), true)
	assert.Equal(t, machine.InBounds(), false)

	machine = csm.NewCalendarStateMachine(parse(t, "2031-01-01T00:00:00.000Z"), 2030)
	assert.Equal(t, machine.InBounds(), false)
}

func TestValueLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)
	ts := parse(t, "2024-03-10T01:15:00.000Z").In(loc)
	machine := csm.NewCalendarStateMachine(ts, 9999)
	assert.Equal(t, machine.Get(csm.Hours), 6)
	assert.Equal(t, machine.Get(csm.Minutes), 45)
	machine.ResetBelow(csm.Days)
	assert.Equal(t, machine.Value(loc).Format(layout), "2024-03-10T00:00:00.000+05:30")
}
