// Package listing reconstructs the hierarchical content of an archive from
// the textual output of 7-Zip's technical listing mode (l -slt).
package listing

import (
	"path"
	"strings"
)

// DirectoryLabel is the human-readable type shown for folders.
const DirectoryLabel = "File folder"

// Entry is one file or folder inside an archive.
// Path is slash-separated and relative to the archive root; directory
// entries carry a trailing slash so the two namespaces never collide.
type Entry struct {
	Path     string
	IsDir    bool
	Size     uint64
	Modified string
	Type     string
}

// Name returns the final path segment, without any trailing slash.
func (e Entry) Name() string {
	return path.Base(strings.TrimSuffix(e.Path, "/"))
}

// Parent returns the slash-terminated parent directory path, or "" for
// entries at the archive root.
func (e Entry) Parent() string {
	trimmed := strings.TrimSuffix(e.Path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}
	return trimmed[:idx+1]
}

// extensionLabels maps lowercase file extensions to display type labels.
var extensionLabels = map[string]string{
	"txt":  "Text document",
	"jpg":  "Image",
	"jpeg": "Image",
	"png":  "Image",
	"gif":  "Image",
	"bmp":  "Image",
	"pdf":  "PDF document",
	"doc":  "Word document",
	"docx": "Word document",
	"xls":  "Excel spreadsheet",
	"xlsx": "Excel spreadsheet",
	"ppt":  "PowerPoint presentation",
	"pptx": "PowerPoint presentation",
	"zip":  "Compressed archive",
	"rar":  "Compressed archive",
	"7z":   "Compressed archive",
	"tar":  "Compressed archive",
	"gz":   "Compressed archive",
	"bz2":  "Compressed archive",
	"exe":  "Application",
	"msi":  "Application",
	"dll":  "Application extension",
	"ini":  "Configuration file",
	"cfg":  "Configuration file",
	"conf": "Configuration file",
	"json": "Configuration file",
	"xml":  "Configuration file",
	"yaml": "Configuration file",
	"toml": "Configuration file",
	"log":  "Log file",
	"md":   "Markdown document",
	"html": "HTML document",
	"htm":  "HTML document",
	"css":  "Stylesheet",
	"js":   "Script file",
	"ts":   "Script file",
	"py":   "Python script",
	"java": "Java source",
	"c":    "C/C++ source",
	"cpp":  "C/C++ source",
	"h":    "C/C++ source",
	"cs":   "C# source",
	"sh":   "Shell script",
	"bat":  "Batch script",
	"mp3":  "Audio file",
	"wav":  "Audio file",
	"ogg":  "Audio file",
	"flac": "Audio file",
	"mp4":  "Video file",
	"mkv":  "Video file",
	"avi":  "Video file",
	"mov":  "Video file",
	"wmv":  "Video file",
	"iso":  "Disc image",
}

// TypeLabel derives the display type for an entry name.
// Directories always report DirectoryLabel; files are labelled by
// extension, with "<EXT> file" for unknown extensions and "File" when
// there is no extension at all.
func TypeLabel(name string, isDir bool) string {
	if isDir {
		return DirectoryLabel
	}
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "File"
	}
	ext := strings.ToLower(name[idx+1:])
	if label, ok := extensionLabels[ext]; ok {
		return label
	}
	return strings.ToUpper(ext) + " file"
}
