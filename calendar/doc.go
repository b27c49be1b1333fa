// Package calendar implements deterministic calendar-field arithmetic over
// point-in-time values.
//
// A [Moment] is an immutable instant at millisecond precision together with
// the location used to decompose it into calendar fields. A [Field] is one of
// the seven supported granularities, ordered from the most significant:
//
//	Year > Month > Day > HourOfDay > Minute > Second > Millisecond
//
// The [Calendar] type snaps moments to field boundaries (Truncate, Ceiling,
// Round), extracts the part of a moment finer than a field as a count of some
// unit (the Fragment family), and evaluates several notions of equality
// (IsSameDay, IsSameInstant, IsSameLocalTime, TruncatedEquals). The
// package-level functions delegate to a default Calendar using UTC.
//
// Failures are returned as [*Error] values unwrapping to one of
// [ErrInvalidField], [ErrArithmeticOverflow] or [ErrNullArgument]:
//
//	m := calendar.FromEpochMilli(1615851610500, time.UTC)
//	hour, err := calendar.Round(m, calendar.HourOfDay)
//	if errors.Is(err, calendar.ErrArithmeticOverflow) {
//		// the year is beyond the configured bound
//	}
//
// All operations are pure and a Calendar is safe for concurrent use.
package calendar
