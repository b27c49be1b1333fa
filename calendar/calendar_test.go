package calendar_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/catalog"
	"github.com/reugn/go-calendar/internal/assert"
	"github.com/reugn/go-calendar/logger"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// moment parses an RFC 3339 value, keeping its offset as the location.
func moment(t *testing.T, value string) calendar.Moment {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, value)
	assert.IsNil(t, err)
	m, err := calendar.ToMoment(ts, ts.Location())
	assert.IsNil(t, err)
	return m
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	c, err := calendar.New(calendar.Options{})
	assert.IsNil(t, err)
	assert.Equal(t, c.Location(), time.UTC)
	assert.Equal(t, c.MaxYear(), calendar.DefaultMaxYear)
	assert.Equal(t, calendar.Default().MaxYear(), calendar.DefaultMaxYear)
}

func TestNewInvalidMaxYear(t *testing.T) {
	t.Parallel()
	for _, maxYear := range []int{-1, 300_000_000} {
		_, err := calendar.New(calendar.Options{MaxYear: maxYear})
		assert.NotEqual(t, err, nil)
	}
}

func TestDefaultLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC-3", -3*3600)
	c, err := calendar.New(calendar.Options{Location: loc})
	assert.IsNil(t, err)

	m, err := c.ToMoment(time.Date(2021, 3, 15, 1, 0, 0, 0, time.UTC), nil)
	assert.IsNil(t, err)
	assert.Equal(t, m.String(), "2021-03-14T22:00:00.000-03:00")
	assert.Equal(t, c.FromEpochMilli(0).String(), "1969-12-31T21:00:00.000-03:00")

	day, err := c.Truncate(m, calendar.Day)
	assert.IsNil(t, err)
	assert.Equal(t, day.String(), "2021-03-14T00:00:00.000-03:00")
}

func TestLogging(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", 0), logger.LevelTrace)
	c, err := calendar.New(calendar.Options{Logger: l})
	assert.IsNil(t, err)

	_, err = c.Truncate(moment(t, "2021-03-15T23:40:10.500Z"), calendar.HourOfDay)
	assert.IsNil(t, err)
	assert.True(t, strings.Contains(b.String(), "op=truncate"), b.String())
	assert.True(t, strings.Contains(b.String(), "result=2021-03-15T23:00:00.000Z"), b.String())
	b.Reset()

	_, err = c.Ceiling(calendar.Moment{}, calendar.Day)
	assert.ErrorIs(t, err, calendar.ErrNullArgument)
	assert.True(t, strings.Contains(b.String(), "Calendar operation rejected"), b.String())
}

func TestCustomCatalog(t *testing.T) {
	t.Parallel()
	c, err := calendar.New(calendar.Options{
		Catalog: catalog.New(map[string]catalog.Entry{
			catalog.InvalidField: {Code: "KER-100", Message: "bad field"},
		}),
	})
	assert.IsNil(t, err)

	_, err = c.Truncate(moment(t, "2021-03-15T23:40:10.500Z"), calendar.Field(9))
	var calErr *calendar.Error
	assert.True(t, errors.As(err, &calErr), "must be a calendar error")
	assert.Equal(t, calErr.Code, "KER-100")
	assert.Equal(t, calErr.Message, "bad field")
	assert.ErrorIs(t, err, calendar.ErrInvalidField)
	assert.Equal(t, err.Error(), "KER-100 bad field: the field FIELD(9) is not supported")
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()
	m := moment(t, "2021-03-15T23:40:10.500Z")
	expected, err := calendar.Round(m, calendar.HourOfDay)
	assert.IsNil(t, err)

	var g errgroup.Group
	results := make([]calendar.Moment, 32)
	for i := range results {
		i := i
		g.Go(func() error {
			var err error
			results[i], err = calendar.Round(m, calendar.HourOfDay)
			return err
		})
	}
	assert.IsNil(t, g.Wait())

	for _, result := range results {
		assert.Equal(t, result.String(), expected.String())
	}
}
