package listregex

import (
	"errors"
	"fmt"
)

// Common matching errors
var (
	// ErrNoMatch indicates the pattern did not match. It is a normal outcome,
	// not a fault: callers branch on it with errors.Is.
	ErrNoMatch = errors.New("no match found")

	// ErrUnsupportedPattern indicates a pattern value that is not a literal,
	// a slice, a combinator result, or a predicate function.
	ErrUnsupportedPattern = errors.New("unsupported pattern form")

	// ErrBadRepeat indicates repetition bounds with min < 0 or max < min.
	ErrBadRepeat = errors.New("invalid repetition bounds")

	// ErrVariableWidthNegate indicates a Negate whose sub-pattern does not
	// have a statically fixed width.
	ErrVariableWidthNegate = errors.New("negated pattern must have a fixed width")
)

// CompileError wraps compilation errors with the offending pattern form.
type CompileError struct {
	Form any
	Err  error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Form != nil {
		return fmt.Sprintf("listregex: cannot compile pattern %v: %v", e.Form, e.Err)
	}
	return fmt.Sprintf("listregex: cannot compile pattern: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BoundsError is the panic value raised by Match accessors on out-of-range
// access. While a user predicate is being evaluated the engine recovers it
// and treats the predicate as failed; anywhere else it is a caller bug.
type BoundsError struct {
	Op    string // accessor that panicked: "At" or "Next"
	Index int
	Len   int
}

// Error implements the error interface
func (e *BoundsError) Error() string {
	if e.Op == "Next" {
		return "listregex: no item after the match"
	}
	return fmt.Sprintf("listregex: index %d out of range for match of %d items", e.Index, e.Len)
}
