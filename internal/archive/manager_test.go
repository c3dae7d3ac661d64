package archive

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Cyclone1070/soarzip/internal/sevenzip"
)

// recordedCall captures one runner invocation.
type recordedCall struct {
	args  []string
	stdin []byte
}

// mockRunner scripts tool invocations. respond (when set) decides the
// outcome per call index; the default is a zero-exit empty result.
type mockRunner struct {
	calls   []recordedCall
	respond func(call int, args []string) (*sevenzip.Result, error)
}

func (m *mockRunner) Run(ctx context.Context, args []string) (*sevenzip.Result, error) {
	return m.record(nil, args)
}

func (m *mockRunner) RunWithInput(ctx context.Context, stdin io.Reader, args []string) (*sevenzip.Result, error) {
	return m.record(stdin, args)
}

func (m *mockRunner) record(stdin io.Reader, args []string) (*sevenzip.Result, error) {
	var input []byte
	if stdin != nil {
		input, _ = io.ReadAll(stdin)
	}
	idx := len(m.calls)
	m.calls = append(m.calls, recordedCall{args: args, stdin: input})
	if m.respond != nil {
		return m.respond(idx, args)
	}
	return &sevenzip.Result{}, nil
}

// callWith returns the first recorded call whose args include every wanted
// string as an exact argument, or -1.
func (m *mockRunner) callWith(wanted ...string) int {
	for i, c := range m.calls {
		present := make(map[string]bool, len(c.args))
		for _, a := range c.args {
			present[a] = true
		}
		all := true
		for _, w := range wanted {
			if !present[w] {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

// mockFS is a localFS whose behaviors default to success and can be
// overridden per test through function fields.
type mockFS struct {
	statFn     func(path string) (os.FileInfo, error)
	readFileFn func(path string) ([]byte, error)
	writes     []string
	renames    [][2]string
	removed    []string
}

func (m *mockFS) Stat(path string) (os.FileInfo, error) {
	if m.statFn != nil {
		return m.statFn(path)
	}
	return fakeFileInfo{name: path}, nil
}

func (m *mockFS) ReadFile(path string) ([]byte, error) {
	if m.readFileFn != nil {
		return m.readFileFn(path)
	}
	return []byte("payload"), nil
}

func (m *mockFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.writes = append(m.writes, path)
	return nil
}

func (m *mockFS) Rename(oldpath, newpath string) error {
	m.renames = append(m.renames, [2]string{oldpath, newpath})
	return nil
}

func (m *mockFS) Remove(path string) error {
	m.removed = append(m.removed, path)
	return nil
}

func (m *mockFS) RemoveAll(path string) error {
	m.removed = append(m.removed, path)
	return nil
}

func (m *mockFS) MkdirAll(path string, perm os.FileMode) error { return nil }

func (m *mockFS) MkdirTemp(dir, pattern string) (string, error) {
	return "/tmp/scratch", nil
}

func newTestManager() (*Manager, *mockRunner, *mockFS) {
	run := &mockRunner{}
	fs := &mockFS{}
	return NewManager(run, fs, "", zap.NewNop()), run, fs
}

func failExit(stderr string) *sevenzip.Result {
	return &sevenzip.Result{ExitCode: 2, Stderr: []byte(stderr)}
}

func TestListParsesToolOutput(t *testing.T) {
	mgr, run, _ := newTestManager()
	run.respond = func(call int, args []string) (*sevenzip.Result, error) {
		out := "header\n----------\nPath = photo.jpg\nSize = 9\nFolder = -\n\n"
		return &sevenzip.Result{Stdout: []byte(out)}, nil
	}

	tree, err := mgr.List(context.Background(), "test.zip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tree.Len())
	}
	if got := run.calls[0].args; got[0] != "l" || got[1] != "-slt" || got[2] != "test.zip" {
		t.Errorf("unexpected list args: %v", got)
	}
}

func TestListMissingArchive(t *testing.T) {
	mgr, run, fs := newTestManager()
	fs.statFn = func(path string) (os.FileInfo, error) {
		return nil, os.ErrNotExist
	}

	_, err := mgr.List(context.Background(), "gone.zip")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(run.calls) != 0 {
		t.Error("precondition failure must not spawn the tool")
	}
}

func TestListToolFailure(t *testing.T) {
	mgr, run, _ := newTestManager()
	run.respond = func(call int, args []string) (*sevenzip.Result, error) {
		return failExit("Cannot open file"), nil
	}

	_, err := mgr.List(context.Background(), "bad.zip")

	var exit *sevenzip.ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exit.ExitCode != 2 || !strings.Contains(exit.Stderr, "Cannot open file") {
		t.Errorf("unexpected exit error: %+v", exit)
	}
}

func TestExtractBuildsArgs(t *testing.T) {
	mgr, run, _ := newTestManager()

	err := mgr.Extract(context.Background(), "a.zip", "/out", []string{"docs/readme.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"x", "a.zip", "-o/out", "-aoa", "docs/readme.txt"}
	got := run.calls[0].args
	if len(got) != len(want) {
		t.Fatalf("expected args %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected args %v, got %v", want, got)
		}
	}
}

func TestCreateRejectsExistingPath(t *testing.T) {
	mgr, run, _ := newTestManager() // default Stat succeeds, so path "exists"

	_, err := mgr.Create(context.Background(), "already.zip", "zip")

	var exists *ExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected ExistsError, got %v", err)
	}
	if len(run.calls) != 0 {
		t.Error("existing target must not spawn the tool")
	}
}

func TestCreateAddsAndRemovesSeed(t *testing.T) {
	mgr, run, fs := newTestManager()
	fs.statFn = func(path string) (os.FileInfo, error) {
		return nil, os.ErrNotExist
	}

	path, err := mgr.Create(context.Background(), "new.7z", "7z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "new.7z" {
		t.Errorf("expected created path new.7z, got %q", path)
	}

	if run.callWith("a", "-t7z", "-mx=9", "new.7z") == -1 {
		t.Errorf("missing 7z add call, calls: %v", run.calls)
	}
	if run.callWith("d", "new.7z", emptyArchiveSeed) == -1 {
		t.Errorf("missing seed delete call, calls: %v", run.calls)
	}
	if len(fs.removed) == 0 {
		t.Error("scratch directory was not cleaned up")
	}
}

func TestAddFilesEmptyIsNoOp(t *testing.T) {
	mgr, run, _ := newTestManager()

	if err := mgr.AddFiles(context.Background(), "a.zip", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.calls) != 0 {
		t.Error("empty input must not spawn the tool")
	}
}

func TestAddFoldersFiltersInvalidInputs(t *testing.T) {
	mgr, run, fs := newTestManager()
	fs.statFn = func(path string) (os.FileInfo, error) {
		switch path {
		case "a.zip":
			return fakeFileInfo{name: path}, nil
		case "/real-dir":
			return fakeFileInfo{name: path, dir: true}, nil
		case "/a-file":
			return fakeFileInfo{name: path}, nil
		default:
			return nil, os.ErrNotExist
		}
	}

	err := mgr.AddFolders(context.Background(), "a.zip", []string{"/real-dir", "/a-file", "/missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(run.calls) != 1 {
		t.Fatalf("expected a single add call, got %d", len(run.calls))
	}
	joined := strings.Join(run.calls[0].args, " ")
	if !strings.Contains(joined, "/real-dir") {
		t.Error("valid directory missing from add args")
	}
	if strings.Contains(joined, "/a-file") || strings.Contains(joined, "/missing") {
		t.Errorf("invalid inputs leaked into add args: %v", run.calls[0].args)
	}
}

func TestAddFoldersAllFilteredSkipsTool(t *testing.T) {
	mgr, run, fs := newTestManager()
	fs.statFn = func(path string) (os.FileInfo, error) {
		if path == "a.zip" {
			return fakeFileInfo{name: path}, nil
		}
		return nil, os.ErrNotExist
	}

	if err := mgr.AddFolders(context.Background(), "a.zip", []string{"/missing"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.calls) != 0 {
		t.Error("fully filtered input must not spawn the tool")
	}
}

func TestDeleteEmptyIsNoOp(t *testing.T) {
	mgr, run, _ := newTestManager()

	if err := mgr.Delete(context.Background(), "a.zip", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.calls) != 0 {
		t.Error("empty input must not spawn the tool")
	}
}

func TestDeletePassesAllEntries(t *testing.T) {
	mgr, run, _ := newTestManager()

	err := mgr.Delete(context.Background(), "a.zip", []string{"x.txt", "docs/y.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := strings.Join(run.calls[0].args, " ")
	if !strings.HasPrefix(joined, "d a.zip") || !strings.Contains(joined, "x.txt") || !strings.Contains(joined, "docs/y.txt") {
		t.Errorf("unexpected delete args: %v", run.calls[0].args)
	}
}
