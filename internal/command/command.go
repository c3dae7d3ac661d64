// Package command is the operation dispatch boundary: it maps named
// operations with loosely-typed payloads (JSON decoded into maps) onto the
// archive manager's typed API. A presentation layer talks to this package
// only.
package command

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/Cyclone1070/soarzip/internal/listing"
)

// manager is the archive operation surface the handler dispatches to.
type manager interface {
	List(ctx context.Context, archivePath string) (*listing.Tree, error)
	Extract(ctx context.Context, archivePath, outputDir string, entries []string) error
	Create(ctx context.Context, archivePath, format string) (string, error)
	AddFiles(ctx context.Context, archivePath string, paths []string) error
	AddFolders(ctx context.Context, archivePath string, paths []string) error
	Delete(ctx context.Context, archivePath string, entries []string) error
	Rename(ctx context.Context, archivePath, oldPath, newName string) error
	CreateFolder(ctx context.Context, archivePath, folderPath string) error
	Move(ctx context.Context, archivePath string, entries []string, destination string) error
	Paste(ctx context.Context, archivePath string, entries []string, destination string, isCut bool) error
}

// Handler dispatches named operations to the archive manager.
type Handler struct {
	mgr manager
	log *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(mgr manager, log *zap.Logger) *Handler {
	if mgr == nil {
		panic("manager is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Handler{mgr: mgr, log: log}
}

func decode[T any](op string, payload map[string]any) (T, error) {
	var req T
	if err := mapstructure.Decode(payload, &req); err != nil {
		return req, &DecodeError{Op: op, Cause: err}
	}
	return req, nil
}

// Dispatch runs the named operation with the given payload. List-style
// operations return a result value; mutations return nil on success.
func (h *Handler) Dispatch(ctx context.Context, op string, payload map[string]any) (any, error) {
	h.log.Debug("dispatching operation", zap.String("op", op))

	switch op {
	case "open_archive":
		req, err := decode[OpenArchiveRequest](op, payload)
		if err != nil {
			return nil, err
		}
		tree, err := h.mgr.List(ctx, req.ArchivePath)
		if err != nil {
			return nil, err
		}
		return entriesResponse(tree), nil

	case "extract_files":
		req, err := decode[ExtractFilesRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.Extract(ctx, req.ArchivePath, req.OutputDirectory, req.Files)

	case "create_new_archive":
		req, err := decode[CreateNewArchiveRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return h.mgr.Create(ctx, req.ArchivePath, req.ArchiveType)

	case "add_files_to_archive":
		req, err := decode[AddFilesRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.AddFiles(ctx, req.ArchivePath, req.Files)

	case "add_folders_to_archive":
		req, err := decode[AddFoldersRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.AddFolders(ctx, req.ArchivePath, req.Folders)

	case "delete_files_in_archive":
		req, err := decode[DeleteFilesRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.Delete(ctx, req.ArchivePath, req.Files)

	case "create_folder_in_archive":
		req, err := decode[CreateFolderRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.CreateFolder(ctx, req.ArchivePath, req.FolderPath)

	case "rename_file_in_archive":
		req, err := decode[RenameFileRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.Rename(ctx, req.ArchivePath, req.OldPath, req.NewName)

	case "move_files_in_archive":
		req, err := decode[MoveFilesRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.Move(ctx, req.ArchivePath, req.Files, req.Destination)

	case "paste_files_in_archive":
		req, err := decode[PasteFilesRequest](op, payload)
		if err != nil {
			return nil, err
		}
		return nil, h.mgr.Paste(ctx, req.ArchivePath, req.Files, req.Destination, req.IsCut)

	default:
		return nil, &UnknownOperationError{Op: op}
	}
}

func entriesResponse(tree *listing.Tree) []EntryResponse {
	out := make([]EntryResponse, 0, tree.Len())
	for _, e := range tree.Entries() {
		out = append(out, EntryResponse{
			Path:        e.Path,
			IsDirectory: e.IsDir,
			SizeBytes:   e.Size,
			Modified:    e.Modified,
			TypeLabel:   e.Type,
		})
	}
	return out
}
