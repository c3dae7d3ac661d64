package command

// Request payloads for each dispatchable operation. Field names follow
// the snake_case convention of the JSON payloads crossing the boundary.

type OpenArchiveRequest struct {
	ArchivePath string `mapstructure:"archive_path"`
}

type ExtractFilesRequest struct {
	ArchivePath     string   `mapstructure:"archive_path"`
	OutputDirectory string   `mapstructure:"output_directory"`
	Files           []string `mapstructure:"files"`
}

type CreateNewArchiveRequest struct {
	ArchivePath string `mapstructure:"archive_path"`
	ArchiveType string `mapstructure:"archive_type"`
}

type AddFilesRequest struct {
	ArchivePath string   `mapstructure:"archive_path"`
	Files       []string `mapstructure:"files"`
}

type AddFoldersRequest struct {
	ArchivePath string   `mapstructure:"archive_path"`
	Folders     []string `mapstructure:"folders"`
}

type DeleteFilesRequest struct {
	ArchivePath string   `mapstructure:"archive_path"`
	Files       []string `mapstructure:"files"`
}

type CreateFolderRequest struct {
	ArchivePath string `mapstructure:"archive_path"`
	FolderPath  string `mapstructure:"folder_path"`
}

type RenameFileRequest struct {
	ArchivePath string `mapstructure:"archive_path"`
	OldPath     string `mapstructure:"old_path"`
	NewName     string `mapstructure:"new_name"`
}

type MoveFilesRequest struct {
	ArchivePath string   `mapstructure:"archive_path"`
	Files       []string `mapstructure:"files"`
	Destination string   `mapstructure:"destination"`
}

type PasteFilesRequest struct {
	ArchivePath string   `mapstructure:"archive_path"`
	Files       []string `mapstructure:"files"`
	Destination string   `mapstructure:"destination"`
	IsCut       bool     `mapstructure:"is_cut"`
}

// EntryResponse is the wire shape of one archive entry.
type EntryResponse struct {
	Path        string `mapstructure:"path" json:"path"`
	IsDirectory bool   `mapstructure:"is_directory" json:"is_directory"`
	SizeBytes   uint64 `mapstructure:"size_bytes" json:"size_bytes"`
	Modified    string `mapstructure:"modified" json:"modified"`
	TypeLabel   string `mapstructure:"type_label" json:"type_label"`
}
