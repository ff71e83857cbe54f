package ers

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the itertools packages.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error produced by
// converting a recovered panic into an error.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvalidArgument marks a call with an argument outside of the
// domain of the operation: negative lengths, zero step sizes.
const ErrInvalidArgument Error = Error("invalid argument")

// ErrLengthMismatch is raised when two sequences that must have the
// same length do not.
const ErrLengthMismatch Error = Error("length mismatch")

// ErrNoElements is returned by queries that need at least one element
// from a sequence that produced none.
const ErrNoElements Error = Error("no elements")

// ErrTooManyElements is returned by queries that accept a bounded
// number of elements from a sequence that produced more.
const ErrTooManyElements Error = Error("too many elements")
