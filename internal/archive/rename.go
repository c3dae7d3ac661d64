package archive

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
)

// renamedPath keeps oldPath's parent directory and substitutes the leaf.
// Root-level entries get no leading separator.
func renamedPath(oldPath, newName string) string {
	idx := strings.LastIndex(oldPath, "/")
	if idx < 0 {
		return newName
	}
	return oldPath[:idx+1] + newName
}

// Rename gives the entry at oldPath the leaf name newName, staying in the
// same directory. The tool has no rename primitive, so the entry is
// extracted to scratch, deleted from the archive, renamed locally and
// added back at the new path. A step failure aborts without rolling back
// earlier steps.
func (m *Manager) Rename(ctx context.Context, archivePath, oldPath, newName string) error {
	if err := m.requireArchive(archivePath); err != nil {
		return err
	}

	newPath := renamedPath(oldPath, newName)
	if newPath == oldPath {
		return nil
	}

	scratch, err := m.scratchDir("rename")
	if err != nil {
		return err
	}
	defer m.cleanupScratch(scratch)

	oldLeaf := oldPath[strings.LastIndex(oldPath, "/")+1:]
	extracted := filepath.Join(scratch, oldLeaf)
	renamed := filepath.Join(scratch, newName)

	return m.runPlan(ctx, "rename", []step{
		{name: "extract entry", policy: abortOnFailure, run: func(ctx context.Context) error {
			return m.exec(ctx, "extract", []string{"e", archivePath, oldPath, "-o" + scratch, "-y"})
		}},
		{name: "delete original entry", policy: abortOnFailure, run: func(ctx context.Context) error {
			return m.exec(ctx, "delete", []string{"d", archivePath, oldPath, "-y"})
		}},
		{name: "rename staged file", policy: abortOnFailure, run: func(ctx context.Context) error {
			if err := m.fs.Rename(extracted, renamed); err != nil {
				return &FSError{Op: "rename staged file", Path: extracted, Cause: err}
			}
			return nil
		}},
		{name: "add renamed entry", policy: abortOnFailure, run: func(ctx context.Context) error {
			content, err := m.fs.ReadFile(renamed)
			if err != nil {
				return &FSError{Op: "read staged file", Path: renamed, Cause: err}
			}
			return m.execWithInput(ctx, "add", bytes.NewReader(content), []string{
				"a", archivePath,
				"-w" + scratch,
				"-si" + newPath,
				"-y",
			})
		}},
	})
}
