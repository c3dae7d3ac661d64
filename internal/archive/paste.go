package archive

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// destinationPath places the entry's leaf name under destination.
// An empty destination targets the archive root.
func destinationPath(entryPath, destination string) string {
	leaf := filepath.Base(strings.TrimSuffix(entryPath, "/"))
	dest := strings.Trim(destination, "/")
	if dest == "" {
		return leaf
	}
	return dest + "/" + leaf
}

// Move relocates entries under destination. Items are processed strictly
// in order and the batch fails fast: a fatal failure on one item leaves
// earlier items already moved and later items untouched. Deleting an
// original after its copy was added is auxiliary; its failure is warned,
// which can leave a duplicated entry.
func (m *Manager) Move(ctx context.Context, archivePath string, entries []string, destination string) error {
	return m.paste(ctx, archivePath, entries, destination, true)
}

// Copy duplicates entries under destination. Identical to Move except the
// originals are kept.
func (m *Manager) Copy(ctx context.Context, archivePath string, entries []string, destination string) error {
	return m.paste(ctx, archivePath, entries, destination, false)
}

// Paste dispatches to Move when isCut is set, otherwise Copy.
func (m *Manager) Paste(ctx context.Context, archivePath string, entries []string, destination string, isCut bool) error {
	if isCut {
		return m.Move(ctx, archivePath, entries, destination)
	}
	return m.Copy(ctx, archivePath, entries, destination)
}

func (m *Manager) paste(ctx context.Context, archivePath string, entries []string, destination string, deleteOriginal bool) error {
	if len(entries) == 0 {
		return nil
	}
	if err := m.requireArchive(archivePath); err != nil {
		return err
	}

	op := "copy"
	if deleteOriginal {
		op = "move"
	}

	// One scratch directory for the whole batch, removed once at the end.
	scratch, err := m.scratchDir(op)
	if err != nil {
		return err
	}
	defer m.cleanupScratch(scratch)

	for _, entry := range entries {
		newPath := destinationPath(entry, destination)
		if newPath == entry {
			continue
		}
		if err := m.pasteOne(ctx, op, archivePath, entry, newPath, destination, scratch, deleteOriginal); err != nil {
			return fmt.Errorf("%s %q: %w", op, entry, err)
		}
	}
	return nil
}

func (m *Manager) pasteOne(ctx context.Context, op, archivePath, entry, newPath, destination, scratch string, deleteOriginal bool) error {
	leaf := filepath.Base(strings.TrimSuffix(entry, "/"))
	staged := filepath.Join(scratch, leaf)

	steps := []step{
		{name: "extract entry", policy: abortOnFailure, run: func(ctx context.Context) error {
			return m.exec(ctx, "extract", []string{"e", archivePath, entry, "-o" + scratch, "-y"})
		}},
	}
	if strings.Trim(destination, "/") != "" {
		steps = append(steps, step{
			name: "ensure destination folder", policy: warnOnFailure, run: func(ctx context.Context) error {
				return m.ensureFolder(ctx, archivePath, strings.Trim(destination, "/"))
			},
		})
	}
	steps = append(steps, step{
		name: "add entry at destination", policy: abortOnFailure, run: func(ctx context.Context) error {
			content, err := m.fs.ReadFile(staged)
			if err != nil {
				return &FSError{Op: "read staged file", Path: staged, Cause: err}
			}
			return m.execWithInput(ctx, "add", bytes.NewReader(content), []string{
				"a", archivePath,
				"-w" + scratch,
				"-si" + newPath,
				"-y",
			})
		},
	})
	if deleteOriginal {
		steps = append(steps, step{
			name: "delete original entry", policy: warnOnFailure, run: func(ctx context.Context) error {
				return m.exec(ctx, "delete", []string{"d", archivePath, entry, "-y"})
			},
		})
	}

	return m.runPlan(ctx, op, steps)
}
