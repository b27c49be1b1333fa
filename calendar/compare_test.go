package calendar_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/internal/assert"
)

func TestIsSameDay(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"2021-03-15T23:40:10.500Z", "2021-03-15T00:00:00.000Z", true},
		{"2021-03-15T23:40:10.500Z", "2021-03-16T00:00:00.000Z", false},
		{"2020-01-01T10:00:00.000Z", "2021-01-01T10:00:00.000Z", false},
		// each moment is decomposed in its own location
		{"2021-03-15T23:40:10.500Z", "2021-03-16T05:10:10.500+05:30", false},
		{"2021-03-15T01:00:00.000+05:30", "2021-03-15T23:00:00.000-03:00", true},
	}
	for _, tt := range tests {
		same, err := calendar.IsSameDay(moment(t, tt.a), moment(t, tt.b))
		assert.IsNil(t, err)
		assert.Equal(t, same, tt.expected)
	}
}

func TestIsSameInstant(t *testing.T) {
	t.Parallel()
	a := moment(t, "2021-03-15T23:40:10.500Z")
	b := a.In(time.FixedZone("", 5*3600+1800))

	same, err := calendar.IsSameInstant(a, a)
	assert.IsNil(t, err)
	assert.Equal(t, same, true)

	same, err = calendar.IsSameInstant(a, b)
	assert.IsNil(t, err)
	assert.Equal(t, same, true)

	same, err = calendar.IsSameInstant(b, a)
	assert.IsNil(t, err)
	assert.Equal(t, same, true)

	local, err := calendar.IsSameLocalTime(a, b)
	assert.IsNil(t, err)
	assert.Equal(t, local, false)

	same, err = calendar.IsSameInstant(a, moment(t, "2021-03-15T23:40:10.501Z"))
	assert.IsNil(t, err)
	assert.Equal(t, same, false)
}

func TestIsSameLocalTime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"2021-03-15T10:00:00.000Z", "2021-03-15T10:00:00.000+05:30", true},
		{"2021-03-15T10:00:00.000Z", "2021-03-15T10:00:00.000Z", true},
		{"2021-03-15T10:00:00.000Z", "2021-03-15T10:00:00.001Z", false},
		{"2021-03-15T10:00:00.000Z", "2022-03-15T10:00:00.000Z", false},
	}
	for _, tt := range tests {
		a, b := moment(t, tt.a), moment(t, tt.b)
		local, err := calendar.IsSameLocalTime(a, b)
		assert.IsNil(t, err)
		assert.Equal(t, local, tt.expected)
	}

	a, b := moment(t, tests[0].a), moment(t, tests[0].b)
	same, err := calendar.IsSameInstant(a, b)
	assert.IsNil(t, err)
	assert.Equal(t, same, false)
}

func TestTruncatedEquals(t *testing.T) {
	t.Parallel()
	a := moment(t, "2021-03-15T10:15:00.000Z")
	b := moment(t, "2021-03-15T10:45:00.000Z")
	c := moment(t, "2021-03-15T11:05:00.000Z")

	equal, err := calendar.TruncatedEquals(a, b, calendar.HourOfDay)
	assert.IsNil(t, err)
	assert.Equal(t, equal, true)

	equal, err = calendar.TruncatedEquals(a, b, calendar.Minute)
	assert.IsNil(t, err)
	assert.Equal(t, equal, false)

	cmp, err := calendar.TruncatedCompare(a, c, calendar.HourOfDay)
	assert.IsNil(t, err)
	assert.Equal(t, cmp, -1)

	cmp, err = calendar.TruncatedCompare(c, a, calendar.HourOfDay)
	assert.IsNil(t, err)
	assert.Equal(t, cmp, 1)

	cmp, err = calendar.TruncatedCompare(c, a, calendar.Day)
	assert.IsNil(t, err)
	assert.Equal(t, cmp, 0)

	_, err = calendar.TruncatedEquals(a, b, calendar.Field(11))
	assert.ErrorIs(t, err, calendar.ErrInvalidField)
}

func TestTruncatedEqualsSameDay(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(7))
	for _, a := range randomMoments(t, 500) {
		offset := r.Int63n(4*24*3600*1000) - 2*24*3600*1000
		b := calendar.FromEpochMilli(a.EpochMilli()+offset, a.Location())

		truncated, err := calendar.TruncatedEquals(a, b, calendar.Day)
		assert.IsNil(t, err)
		sameDay, err := calendar.IsSameDay(a, b)
		assert.IsNil(t, err)
		assert.Equal(t, truncated, sameDay)
	}
}

func TestCompareNullArgument(t *testing.T) {
	t.Parallel()
	valid := moment(t, "2021-03-15T10:15:00.000Z")
	var absent calendar.Moment

	predicates := []func(calendar.Moment, calendar.Moment) (bool, error){
		calendar.IsSameDay,
		calendar.IsSameInstant,
		calendar.IsSameLocalTime,
		func(a, b calendar.Moment) (bool, error) {
			return calendar.TruncatedEquals(a, b, calendar.Day)
		},
	}
	for _, predicate := range predicates {
		_, err := predicate(valid, absent)
		assert.ErrorIs(t, err, calendar.ErrNullArgument)
		_, err = predicate(absent, valid)
		assert.ErrorIs(t, err, calendar.ErrNullArgument)
	}
}
