package postletter

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrResource      = errors.New("postletter: resource unavailable")
	ErrData          = errors.New("postletter: invalid record")
	ErrIO            = errors.New("postletter: output failed")
	ErrInvalidOption = errors.New("postletter: invalid option")
)

// Error describes a failed operation. It matches both its Kind and the
// underlying cause with errors.Is and errors.As.
type Error struct {
	Op     string // operation name, e.g. "Render", "Finalize"
	Kind   error  // one of the Err* kinds above
	Record int    // 1-based dataset position, 0 when not tied to a record
	Err    error  // underlying error
}

func (e *Error) Error() string {
	msg := "postletter." + e.Op
	if e.Record > 0 {
		msg += fmt.Sprintf(": record %d", e.Record)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": " + e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op string, kind error, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func recordError(op string, record int, err error) *Error {
	return &Error{Op: op, Kind: ErrData, Record: record, Err: err}
}
