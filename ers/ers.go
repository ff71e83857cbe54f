// Package ers holds the constant sentinel errors and panic helpers
// used by the itertools packages.
//
// Iteration itself never fails: adaptors panic when called with
// arguments that cannot produce a meaningful sequence, and those panics
// always carry an error that wraps one of the sentinels declared here,
// so callers that recover can use errors.Is to tell them apart.
package ers

import "errors"

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}

// Is returns true if the error is one of the target errors, (or one
// of its constituent (wrapped) errors is a target error.)
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Ok returns true when the error is nil.
func Ok(err error) bool { return err == nil }
