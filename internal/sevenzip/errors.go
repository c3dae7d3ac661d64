package sevenzip

import (
	"fmt"
)

// NotFoundError is returned when no usable 7-Zip binary can be resolved.
type NotFoundError struct {
	Configured string // explicit path from config, empty if PATH was probed
	Cause      error
}

func (e *NotFoundError) Error() string {
	if e.Configured != "" {
		return fmt.Sprintf("7-Zip executable not found at configured path: %s", e.Configured)
	}
	return "7-Zip executable not found on PATH (tried 7zz, 7z, 7za)"
}

func (e *NotFoundError) Unwrap() error { return e.Cause }

// StartError is returned when the 7-Zip subprocess could not be spawned.
type StartError struct {
	Binary string
	Cause  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to execute 7-Zip command: %v", e.Cause)
}

func (e *StartError) Unwrap() error { return e.Cause }

// ExitError is returned when 7-Zip ran but exited non-zero.
// Stderr carries the decoded, trimmed diagnostic text.
type ExitError struct {
	Op       string // the 7-Zip verb that failed: "list", "add", "delete", "extract"
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("7-Zip %s command failed with exit code %d: %s", e.Op, e.ExitCode, e.Stderr)
}

// NewExitError builds an ExitError from a failed invocation result.
func NewExitError(op string, res *Result) *ExitError {
	stderr := ""
	if res != nil {
		stderr = trimmedStderr(res)
	}
	code := -1
	if res != nil {
		code = res.ExitCode
	}
	return &ExitError{Op: op, ExitCode: code, Stderr: stderr}
}
