package command

import "fmt"

// UnknownOperationError is returned for an operation name no handler matches.
type UnknownOperationError struct {
	Op string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Op)
}

// InvalidInput marks the error for callers using behavior checks.
func (e *UnknownOperationError) InvalidInput() bool { return true }

// DecodeError is returned when a payload does not match the operation's
// request shape.
type DecodeError struct {
	Op    string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid payload for %s: %v", e.Op, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// InvalidInput marks the error for callers using behavior checks.
func (e *DecodeError) InvalidInput() bool { return true }
