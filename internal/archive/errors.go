package archive

import "fmt"

// NotFoundError is returned when a precondition path check fails before
// any subprocess is spawned.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("archive file not found: %s", e.Path)
}

// NotFound marks the error for callers using behavior checks.
func (e *NotFoundError) NotFound() bool { return true }

// ExistsError is returned when creating an archive at a path that is
// already occupied.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("file already exists at the specified path: %s", e.Path)
}

// InvalidInput marks the error for callers using behavior checks.
func (e *ExistsError) InvalidInput() bool { return true }

// InvalidFolderPathError is returned when a folder path fails validation.
type InvalidFolderPathError struct {
	Path   string
	Reason string
}

func (e *InvalidFolderPathError) Error() string {
	return fmt.Sprintf("invalid folder path %q: %s", e.Path, e.Reason)
}

// InvalidInput marks the error for callers using behavior checks.
func (e *InvalidFolderPathError) InvalidInput() bool { return true }

// FSError wraps a local filesystem failure during scratch staging.
type FSError struct {
	Op    string
	Path  string
	Cause error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Cause)
}

func (e *FSError) Unwrap() error { return e.Cause }

// IOError marks the error for callers using behavior checks.
func (e *FSError) IOError() bool { return true }
