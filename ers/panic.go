package ers

import (
	"errors"
	"fmt"
)

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation. Errors and strings are joined
// directly, format strings are rendered with the remaining arguments.
func NewInvariantViolation(args ...any) error {
	switch len(args) {
	case 0:
		return ErrInvariantViolation
	case 1:
		switch ei := args[0].(type) {
		case error:
			return errors.Join(ei, ErrInvariantViolation)
		case string:
			return errors.Join(New(ei), ErrInvariantViolation)
		default:
			return errors.Join(fmt.Errorf("%v", ei), ErrInvariantViolation)
		}
	default:
		if err, ok := args[0].(error); ok {
			return errors.Join(err, fmt.Errorf(fmt.Sprint(args[1]), args[2:]...), ErrInvariantViolation)
		}
		return errors.Join(fmt.Errorf(fmt.Sprint(args[0]), args[1:]...), ErrInvariantViolation)
	}
}

// Invariant panics with an invariant violation error when the
// condition is false. The arguments are passed to
// NewInvariantViolation.
func Invariant(cond bool, args ...any) {
	if !cond {
		panic(NewInvariantViolation(args...))
	}
}

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return errors.Join(err, ErrRecoveredPanic)
	case string:
		return errors.Join(New(err), ErrRecoveredPanic)
	default:
		return errors.Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}
