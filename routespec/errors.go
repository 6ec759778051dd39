package routespec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnclosedGroup is returned when a "(" has no matching ")".
	ErrUnclosedGroup = errors.New("unclosed optional group")

	// ErrUnexpectedClose is returned for a ")" without a matching "(".
	ErrUnexpectedClose = errors.New("unexpected \")\"")

	// ErrMissingName is returned when "*" or ":" is not followed by a name.
	ErrMissingName = errors.New("missing capture name")

	// ErrDuplicateName is returned when a capture name is used twice.
	ErrDuplicateName = errors.New("duplicated capture name")
)

// ParseError describes a malformed pattern. Err is one of the sentinel
// errors above, so callers can use errors.Is.
type ParseError struct {
	Pattern string
	Offset  int
	Detail  string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("routespec: %v at offset %d in %q", e.Err, e.Offset, e.Pattern)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
