// Package csm implements a calendar state machine: a date-time decomposed
// into per-field nodes that can be reset and advanced with carry.
//
// A date can be thought of as a mixed-radix number
// (https://en.wikipedia.org/wiki/Mixed_radix). Resetting a field sets every
// less significant field to its minimum value. Advancing a field increments
// it by one, and an overflow resets it and advances the next more significant
// field. The year field does not wrap; advancing it past the configured bound
// reports an overflow to the caller.
//
// NOTE: the "day" value does not have a constant radix. It depends on the
// month and the year, which is taken into account by the DayNode struct
// (day_node.go).
package csm
