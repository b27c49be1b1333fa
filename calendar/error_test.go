package calendar_test

import (
	"errors"
	"math"
	"testing"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/internal/assert"
)

func TestErrorPayload(t *testing.T) {
	t.Parallel()
	m := moment(t, "2021-03-15T23:40:10.500Z")
	_, invalidField := calendar.Truncate(m, calendar.Field(8))
	_, overflow := calendar.Truncate(calendar.FromEpochMilli(math.MaxInt64, nil), calendar.Day)
	_, nullArgument := calendar.IsSameDay(m, calendar.Moment{})
	tests := []struct {
		err  error
		kind error
		code string
	}{
		{
			err:  invalidField,
			kind: calendar.ErrInvalidField,
			code: "COK-UTL-CAL-001",
		},
		{
			err:  overflow,
			kind: calendar.ErrArithmeticOverflow,
			code: "COK-UTL-CAL-002",
		},
		{
			err:  nullArgument,
			kind: calendar.ErrNullArgument,
			code: "COK-UTL-CAL-003",
		},
	}
	for _, tt := range tests {
		var calErr *calendar.Error
		assert.True(t, errors.As(tt.err, &calErr), "must be a calendar error")
		assert.Equal(t, calErr.Kind, tt.kind)
		assert.Equal(t, calErr.Code, tt.code)
		assert.NotEqual(t, calErr.Message, "")
		assert.ErrorIs(t, tt.err, tt.kind)
	}
}

func TestErrorFormat(t *testing.T) {
	t.Parallel()
	err := &calendar.Error{Kind: calendar.ErrNullArgument, Detail: "the moment must not be absent"}
	assert.Equal(t, err.Error(), "null argument: the moment must not be absent")

	err = &calendar.Error{
		Kind:    calendar.ErrInvalidField,
		Code:    "COK-UTL-CAL-001",
		Message: "Invalid argument",
		Detail:  "the field FIELD(8) is not supported",
	}
	assert.Equal(t, err.Error(), "COK-UTL-CAL-001 Invalid argument: the field FIELD(8) is not supported")
	assert.Equal(t, errors.Unwrap(err), calendar.ErrInvalidField)
}
