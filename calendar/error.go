package calendar

import (
	"errors"
	"fmt"

	"github.com/reugn/go-calendar/catalog"
)

// Errors
var (
	ErrInvalidField       = errors.New("invalid field")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrNullArgument       = errors.New("null argument")
)

// Error is a calendar failure. It unwraps to its Kind, one of the package
// error sentinels, and carries the code and message registered for the kind
// in the calendar's catalog.
type Error struct {
	Kind    error
	Code    string
	Message string
	Detail  string
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s %s: %s", e.Code, e.Message, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// newError returns an error of the given kind, populated from the catalog
// entry registered under key.
func newError(c *catalog.Catalog, kind error, key, detail string) *Error {
	entry, ok := c.Lookup(key)
	if !ok {
		entry = catalog.Entry{Message: kind.Error()}
	}
	return &Error{
		Kind:    kind,
		Code:    entry.Code,
		Message: entry.Message,
		Detail:  detail,
	}
}

func (c *Calendar) invalidFieldError(f Field) error {
	return newError(c.catalog, ErrInvalidField, catalog.InvalidField,
		fmt.Sprintf("the field %s is not supported", f))
}

func (c *Calendar) fragmentError(fragment, unit Field) error {
	return newError(c.catalog, ErrInvalidField, catalog.InvalidField,
		fmt.Sprintf("the fragment %s is not supported for unit %s", fragment, unit))
}

func (c *Calendar) overflowError(year int) error {
	return newError(c.catalog, ErrArithmeticOverflow, catalog.ArithmeticOverflow,
		fmt.Sprintf("year %d is beyond the bound of %d", year, c.maxYear))
}

func (c *Calendar) nullArgumentError(name string) error {
	return newError(c.catalog, ErrNullArgument, catalog.NullArgument,
		fmt.Sprintf("the %s must not be absent", name))
}
