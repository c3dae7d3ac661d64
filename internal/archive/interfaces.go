package archive

import (
	"context"
	"io"
	"os"

	"github.com/Cyclone1070/soarzip/internal/sevenzip"
)

// runner invokes the external 7-Zip binary.
type runner interface {
	Run(ctx context.Context, args []string) (*sevenzip.Result, error)
	RunWithInput(ctx context.Context, stdin io.Reader, args []string) (*sevenzip.Result, error)
}

// localFS covers the local filesystem operations the planner needs for
// scratch staging and precondition checks.
type localFS interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(path string) error
	RemoveAll(path string) error
	MkdirAll(path string, perm os.FileMode) error
	MkdirTemp(dir, pattern string) (string, error)
}
