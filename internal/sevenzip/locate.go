package sevenzip

import (
	"os"
	"os/exec"
)

// candidateBinaries are the executable names probed on PATH, in order.
// 7zz is the official standalone console build on Linux/macOS, 7z the
// full build, 7za the reduced standalone build.
var candidateBinaries = []string{"7zz", "7z", "7za"}

// Locate resolves the 7-Zip binary to invoke.
// A non-empty configured path wins and must exist; otherwise PATH is
// probed for the known executable names.
func Locate(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", &NotFoundError{Configured: configured, Cause: err}
		}
		return configured, nil
	}

	for _, name := range candidateBinaries {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", &NotFoundError{}
}
