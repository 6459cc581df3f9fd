// Package status defines the small set of result codes returned by
// StringZilla kernels that can fail.
//
// Most kernels in this module are infallible by contract (see each
// package's doc comment). Only the similarity and sequence kernels,
// which consult a caller-supplied allocator, report a non-success code,
// and that code is always BadAlloc: no kernel in this module returns
// InvalidUTF8, ContainsDuplicates, or Unknown.
package status

import "fmt"

// Code is a result code returned by fallible kernels.
type Code uint8

const (
	// Success indicates the operation completed and wrote its full result.
	Success Code = iota
	// BadAlloc indicates scratch allocation failed; no partial output was written.
	BadAlloc
	// InvalidUTF8 indicates the input was not well-formed UTF-8 where that was required.
	InvalidUTF8
	// ContainsDuplicates indicates repeated entries where unique inputs were required.
	// sequence.Intersect has no uniqueness option and never returns it.
	ContainsDuplicates
	// Unknown is a catch-all for conditions not covered by the other codes.
	Unknown
)

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case BadAlloc:
		return "bad_alloc"
	case InvalidUTF8:
		return "invalid_utf8"
	case ContainsDuplicates:
		return "contains_duplicates"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// OK reports whether c is Success.
func (c Code) OK() bool {
	return c == Success
}

// Error wraps a Code with operation context, letting callers use
// errors.Is(err, status.BadAlloc) style checks via Is.
type Error struct {
	Code Code
	Op   string // operation that failed, e.g. "sequence.Intersect"
	Err  error  // optional underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error comparison for errors.Is, matching on Code alone
// so callers can write errors.Is(err, &status.Error{Code: status.BadAlloc}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New builds a *Error for the given operation and code.
func New(op string, code Code) *Error {
	return &Error{Op: op, Code: code}
}

// Wrap builds a *Error for the given operation and code, recording cause.
func Wrap(op string, code Code, cause error) *Error {
	return &Error{Op: op, Code: code, Err: cause}
}
