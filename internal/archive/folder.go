package archive

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// validateFolderPath rejects empty and slash-only paths and any path with
// a parent-traversal segment. A ".." embedded inside a segment name
// ("a..b") is legal.
func validateFolderPath(p string) error {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return &InvalidFolderPathError{Path: p, Reason: "path is empty"}
	}
	for _, seg := range strings.Split(trimmed, "/") {
		if seg == ".." {
			return &InvalidFolderPathError{Path: p, Reason: "parent traversal segment"}
		}
	}
	return nil
}

// CreateFolder adds a directory entry at folderPath.
//
// Strategy A feeds an empty payload through stdin so the tool records a
// zero-byte entry named "<path>/". Some formats reject that, so on a
// non-zero exit Strategy B stages a hidden placeholder file, adds it at
// "<path>/<placeholder>" and deletes the placeholder entry again. A failed
// placeholder delete leaves the folder created and is only warned about.
func (m *Manager) CreateFolder(ctx context.Context, archivePath, folderPath string) error {
	if err := validateFolderPath(folderPath); err != nil {
		return err
	}
	if err := m.requireArchive(archivePath); err != nil {
		return err
	}

	folder := strings.Trim(folderPath, "/")

	if err := m.ensureFolder(ctx, archivePath, folder); err == nil {
		return nil
	} else {
		m.log.Debug("stdin folder creation rejected, using placeholder",
			zap.String("folder", folder), zap.Error(err))
	}

	return m.createFolderViaPlaceholder(ctx, archivePath, folder)
}

func (m *Manager) createFolderViaPlaceholder(ctx context.Context, archivePath, folder string) error {
	scratch, err := m.scratchDir("folder")
	if err != nil {
		return err
	}
	defer m.cleanupScratch(scratch)

	local := filepath.Join(scratch, folderPlaceholder)
	if err := m.fs.WriteFile(local, nil, 0o644); err != nil {
		return &FSError{Op: "create placeholder file", Path: local, Cause: err}
	}

	inArchive := folder + "/" + folderPlaceholder

	return m.runPlan(ctx, "create folder", []step{
		{name: "add placeholder", policy: abortOnFailure, run: func(ctx context.Context) error {
			return m.exec(ctx, "add", []string{
				"a", archivePath, local,
				"-w" + scratch,
				"-i!" + folderPlaceholder,
				"-sa=" + inArchive,
				"-y",
			})
		}},
		{name: "remove placeholder entry", policy: warnOnFailure, run: func(ctx context.Context) error {
			return m.exec(ctx, "delete", []string{"d", archivePath, inArchive, "-y"})
		}},
	})
}
