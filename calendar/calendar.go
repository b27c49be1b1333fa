package calendar

import (
	"fmt"
	"time"

	"github.com/reugn/go-calendar/catalog"
	"github.com/reugn/go-calendar/logger"
)

const (
	// DefaultMaxYear is the default bound on the absolute value of a year
	// operated on by a Calendar.
	DefaultMaxYear = 280_000_000

	// maxEpochMilliYear approximates the last year representable as int64
	// milliseconds since the Unix epoch.
	maxEpochMilliYear = 292_000_000
)

// Options configures a Calendar. Zero fields select the defaults.
type Options struct {
	// Location is used to decompose moments created without an explicit
	// location. Defaults to UTC.
	Location *time.Location

	// MaxYear bounds the absolute value of the years operated on. Truncate,
	// Ceiling and Round fail with ErrArithmeticOverflow beyond it.
	// Defaults to DefaultMaxYear.
	MaxYear int

	// Catalog provides the error codes and messages of the failures.
	// Defaults to catalog.Default().
	Catalog *catalog.Catalog

	// Logger receives the operation records. Defaults to logger.Default(),
	// resolved on each call.
	Logger logger.Logger
}

// Calendar performs field arithmetic on moments. A Calendar is immutable
// and safe for concurrent use.
type Calendar struct {
	location *time.Location
	maxYear  int
	catalog  *catalog.Catalog
	logger   logger.Logger
}

var defaultCalendar = &Calendar{
	location: time.UTC,
	maxYear:  DefaultMaxYear,
	catalog:  catalog.Default(),
}

// Default returns the Calendar used by the package-level functions.
func Default() *Calendar {
	return defaultCalendar
}

// New returns a new Calendar configured as specified.
func New(opts Options) (*Calendar, error) {
	c := &Calendar{
		location: opts.Location,
		maxYear:  opts.MaxYear,
		catalog:  opts.Catalog,
		logger:   opts.Logger,
	}
	if c.location == nil {
		c.location = time.UTC
	}
	if c.maxYear == 0 {
		c.maxYear = DefaultMaxYear
	}
	if c.maxYear < 0 || c.maxYear > maxEpochMilliYear {
		return nil, fmt.Errorf("max year %d is out of range (0, %d]", c.maxYear, maxEpochMilliYear)
	}
	if c.catalog == nil {
		c.catalog = catalog.Default()
	}
	return c, nil
}

// Location returns the default location of the calendar.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// MaxYear returns the year bound of the calendar.
func (c *Calendar) MaxYear() int {
	return c.maxYear
}

func (c *Calendar) log() logger.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.Default()
}

// record logs the outcome of an operation.
func (c *Calendar) record(op string, m Moment, f Field, result any, err error) {
	l := c.log()
	if err != nil {
		l.Debug("Calendar operation rejected", "op", op, "moment", m, "field", f, "error", err)
		return
	}
	if l.Enabled(logger.LevelTrace) {
		l.Trace("Calendar operation", "op", op, "moment", m, "field", f, "result", result)
	}
}

// ToMoment wraps t into a Moment decomposed in loc, or in the calendar's
// location if loc is nil. The zero time is treated as absent.
func (c *Calendar) ToMoment(t time.Time, loc *time.Location) (Moment, error) {
	if t.IsZero() {
		err := c.nullArgumentError("instant")
		c.log().Debug("Calendar operation rejected", "op", "toMoment", "error", err)
		return Moment{}, err
	}
	if loc == nil {
		loc = c.location
	}
	return newMoment(t, loc), nil
}

// FromEpochMilli returns the moment ms milliseconds after the Unix epoch,
// decomposed in the calendar's location.
func (c *Calendar) FromEpochMilli(ms int64) Moment {
	return newMoment(time.UnixMilli(ms), c.location)
}

// ToMoment wraps t into a Moment using the default calendar.
func ToMoment(t time.Time, loc *time.Location) (Moment, error) {
	return defaultCalendar.ToMoment(t, loc)
}

// Truncate truncates m using the default calendar.
func Truncate(m Moment, f Field) (Moment, error) {
	return defaultCalendar.Truncate(m, f)
}

// Ceiling returns the ceiling of m using the default calendar.
func Ceiling(m Moment, f Field) (Moment, error) {
	return defaultCalendar.Ceiling(m, f)
}

// Round rounds m using the default calendar.
func Round(m Moment, f Field) (Moment, error) {
	return defaultCalendar.Round(m, f)
}

// FragmentInDays returns the days fragment of m using the default calendar.
func FragmentInDays(m Moment, fragment Field) (int64, error) {
	return defaultCalendar.FragmentInDays(m, fragment)
}

// FragmentInHours returns the hours fragment of m using the default calendar.
func FragmentInHours(m Moment, fragment Field) (int64, error) {
	return defaultCalendar.FragmentInHours(m, fragment)
}

// FragmentInMinutes returns the minutes fragment of m using the default calendar.
func FragmentInMinutes(m Moment, fragment Field) (int64, error) {
	return defaultCalendar.FragmentInMinutes(m, fragment)
}

// FragmentInSeconds returns the seconds fragment of m using the default calendar.
func FragmentInSeconds(m Moment, fragment Field) (int64, error) {
	return defaultCalendar.FragmentInSeconds(m, fragment)
}

// FragmentInMilliseconds returns the milliseconds fragment of m using the
// default calendar.
func FragmentInMilliseconds(m Moment, fragment Field) (int64, error) {
	return defaultCalendar.FragmentInMilliseconds(m, fragment)
}

// IsSameDay reports whether a and b fall on the same day.
func IsSameDay(a, b Moment) (bool, error) {
	return defaultCalendar.IsSameDay(a, b)
}

// IsSameInstant reports whether a and b denote the same instant.
func IsSameInstant(a, b Moment) (bool, error) {
	return defaultCalendar.IsSameInstant(a, b)
}

// IsSameLocalTime reports whether a and b have the same wall-clock fields.
func IsSameLocalTime(a, b Moment) (bool, error) {
	return defaultCalendar.IsSameLocalTime(a, b)
}

// TruncatedEquals reports whether a and b are equal once truncated to f.
func TruncatedEquals(a, b Moment, f Field) (bool, error) {
	return defaultCalendar.TruncatedEquals(a, b, f)
}

// TruncatedCompare compares a and b once truncated to f.
func TruncatedCompare(a, b Moment, f Field) (int, error) {
	return defaultCalendar.TruncatedCompare(a, b, f)
}
