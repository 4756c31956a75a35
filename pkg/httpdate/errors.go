package httpdate

import (
	"errors"
	"fmt"
)

// ParseError represents an error that occurred during HTTP-date parsing.
type ParseError struct {
	Message string // human-readable error message
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("httpdate: %s", e.Message)
}

var (
	// ErrInvalidDate is returned for any string that is not a valid
	// HTTP-date. It does not say what was wrong with the input.
	ErrInvalidDate error = &ParseError{Message: "string contains no or an invalid date"}

	// ErrOutOfRange is returned when an instant falls outside
	// 1970-01-01T00:00:00Z up to but excluding 10000-01-01T00:00:00Z.
	ErrOutOfRange = errors.New("httpdate: instant out of range")
)
