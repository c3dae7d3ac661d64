// Package archive composes 7-Zip's four primitives (list, add, delete,
// extract) into the higher-level operations the tool has no native verb
// for: rename, move, copy and create-folder.
//
// Every operation is synchronous and issues its subprocess calls strictly
// in sequence. Nothing here locks: callers that mutate the same archive
// from multiple goroutines must serialize per archive path themselves.
// Batch operations are not atomic across items; a mid-batch failure leaves
// earlier items mutated and later items untouched.
package archive

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Cyclone1070/soarzip/internal/listing"
	"github.com/Cyclone1070/soarzip/internal/sevenzip"
)

const (
	// emptyArchiveSeed is the throwaway member used to create a new,
	// otherwise-empty archive; 7-Zip refuses to create one with no input.
	emptyArchiveSeed = "soarzip_empty.tmp"
	// folderPlaceholder is the hidden member added and then removed when
	// a folder entry cannot be created through the stdin strategy.
	folderPlaceholder = ".soarzip_placeholder"
)

// Manager plans and executes archive operations.
type Manager struct {
	run         runner
	fs          localFS
	log         *zap.Logger
	scratchRoot string
}

// NewManager creates a Manager. scratchRoot is where per-invocation
// scratch directories are created; empty means the system temp directory.
func NewManager(run runner, fs localFS, scratchRoot string, log *zap.Logger) *Manager {
	if run == nil {
		panic("runner is required")
	}
	if fs == nil {
		panic("filesystem is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Manager{run: run, fs: fs, log: log, scratchRoot: scratchRoot}
}

// List invokes the tool's detailed listing and rebuilds the entry tree.
// The tree is re-derived in full on every call; after any mutation the
// caller must List again to observe the new state.
func (m *Manager) List(ctx context.Context, archivePath string) (*listing.Tree, error) {
	if err := m.requireArchive(archivePath); err != nil {
		return nil, err
	}

	res, err := m.run.Run(ctx, []string{"l", "-slt", archivePath})
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, sevenzip.NewExitError("list", res)
	}

	tree := listing.Parse(sevenzip.Decode(res.Stdout))
	m.log.Debug("listed archive",
		zap.String("archive", archivePath),
		zap.Int("entries", tree.Len()))
	return tree, nil
}

// Extract unpacks entries into outputDir, creating it if needed. An empty
// entries slice extracts the whole archive. Existing files in outputDir
// are overwritten.
func (m *Manager) Extract(ctx context.Context, archivePath, outputDir string, entries []string) error {
	if err := m.requireArchive(archivePath); err != nil {
		return err
	}
	if err := m.fs.MkdirAll(outputDir, 0o755); err != nil {
		return &FSError{Op: "create output directory", Path: outputDir, Cause: err}
	}

	args := []string{"x", archivePath, "-o" + outputDir, "-aoa"}
	args = append(args, entries...)
	return m.exec(ctx, "extract", args)
}

// Create makes a new, empty archive at archivePath. format is the 7-Zip
// type name (zip, 7z, tar, ...). 7-Zip cannot create an archive with no
// members, so an empty seed file is added and then deleted again.
func (m *Manager) Create(ctx context.Context, archivePath, format string) (string, error) {
	if _, err := m.fs.Stat(archivePath); err == nil {
		return "", &ExistsError{Path: archivePath}
	}

	scratch, err := m.scratchDir("create")
	if err != nil {
		return "", err
	}
	defer m.cleanupScratch(scratch)

	seed := filepath.Join(scratch, emptyArchiveSeed)
	if err := m.fs.WriteFile(seed, nil, 0o644); err != nil {
		return "", &FSError{Op: "create seed file", Path: seed, Cause: err}
	}

	addArgs := []string{"a", "-y", "-t" + format}
	if format == "7z" {
		addArgs = append(addArgs, "-mx=9")
	}
	addArgs = append(addArgs, archivePath, seed)

	err = m.runPlan(ctx, "create", []step{
		{name: "create archive", policy: abortOnFailure, run: func(ctx context.Context) error {
			return m.exec(ctx, "add", addArgs)
		}},
		{name: "remove seed entry", policy: abortOnFailure, run: func(ctx context.Context) error {
			return m.exec(ctx, "delete", []string{"d", archivePath, emptyArchiveSeed, "-y"})
		}},
	})
	if err != nil {
		return "", err
	}
	return archivePath, nil
}

// AddFiles adds local files to the archive. An empty input is a no-op.
func (m *Manager) AddFiles(ctx context.Context, archivePath string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := m.requireArchive(archivePath); err != nil {
		return err
	}

	args := append([]string{"a", archivePath, "-y"}, paths...)
	return m.exec(ctx, "add", args)
}

// AddFolders adds local directories to the archive. Inputs that do not
// exist or are not directories are skipped with a warning rather than
// failing the batch; if nothing survives the filter the call succeeds
// without invoking the tool.
func (m *Manager) AddFolders(ctx context.Context, archivePath string, paths []string) error {
	if err := m.requireArchive(archivePath); err != nil {
		return err
	}

	valid := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := m.fs.Stat(p)
		if err != nil || !info.IsDir() {
			m.log.Warn("skipping non-directory input", zap.String("path", p))
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return nil
	}

	args := append([]string{"a", archivePath, "-y"}, valid...)
	return m.exec(ctx, "add", args)
}

// Delete removes entries from the archive in a single invocation.
// An empty input is a no-op.
func (m *Manager) Delete(ctx context.Context, archivePath string, entries []string) error {
	if len(entries) == 0 {
		return nil
	}
	if err := m.requireArchive(archivePath); err != nil {
		return err
	}

	args := append([]string{"d", archivePath, "-y"}, entries...)
	return m.exec(ctx, "delete", args)
}

// requireArchive fails fast when the archive file is missing, before any
// subprocess is spawned.
func (m *Manager) requireArchive(archivePath string) error {
	if _, err := m.fs.Stat(archivePath); err != nil {
		return &NotFoundError{Path: archivePath}
	}
	return nil
}

// exec runs a tool invocation and converts a non-zero exit into an error
// carrying the decoded diagnostics.
func (m *Manager) exec(ctx context.Context, op string, args []string) error {
	res, err := m.run.Run(ctx, args)
	if err != nil {
		return err
	}
	if !res.Success() {
		return sevenzip.NewExitError(op, res)
	}
	return nil
}

// execWithInput is exec with the subprocess stdin attached.
func (m *Manager) execWithInput(ctx context.Context, op string, stdin io.Reader, args []string) error {
	res, err := m.run.RunWithInput(ctx, stdin, args)
	if err != nil {
		return err
	}
	if !res.Success() {
		return sevenzip.NewExitError(op, res)
	}
	return nil
}

// scratchDir creates a scratch directory unique to this invocation.
// The kind prefix keeps leftovers attributable when cleanup fails.
func (m *Manager) scratchDir(kind string) (string, error) {
	dir, err := m.fs.MkdirTemp(m.scratchRoot, "soarzip-"+kind+"-*")
	if err != nil {
		return "", &FSError{Op: "create scratch directory", Path: m.scratchRoot, Cause: err}
	}
	return dir, nil
}

// cleanupScratch removes a scratch directory; failures are logged only.
func (m *Manager) cleanupScratch(dir string) {
	if err := m.fs.RemoveAll(dir); err != nil {
		m.log.Warn("failed to remove scratch directory",
			zap.String("dir", dir), zap.Error(err))
	}
}

// ensureFolder best-effort creates a directory entry through the stdin
// strategy. Shared by CreateFolder and the move/copy destination
// pre-creation.
func (m *Manager) ensureFolder(ctx context.Context, archivePath, dir string) error {
	name := strings.TrimSuffix(dir, "/") + "/"
	args := []string{"a", archivePath, "-tzip", "-si", "-w.", name, "-y"}
	return m.execWithInput(ctx, "add", bytes.NewReader(nil), args)
}
