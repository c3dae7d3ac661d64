package listing

import (
	"sort"
	"strconv"
	"strings"
)

// parserState tracks where the line scanner is inside the -slt output.
type parserState int

const (
	// stateHeader: still inside the banner and archive-property section,
	// waiting for the "----------" separator that precedes entry blocks.
	stateHeader parserState = iota
	// stateBlocks: past the separator; lines are "Key = Value" pairs
	// grouped into per-entry blocks by blank lines.
	stateBlocks
)

// blockSeparator divides the archive-property header from the entry blocks.
const blockSeparator = "----------"

// rawEntry accumulates the fields of one Key = Value block.
type rawEntry struct {
	path     string
	size     uint64
	isDir    bool
	modified string
}

func (r *rawEntry) reset() {
	*r = rawEntry{}
}

func (r *rawEntry) toEntry() Entry {
	p := r.path
	if r.isDir && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	e := Entry{
		Path:     p,
		IsDir:    r.isDir,
		Size:     r.size,
		Modified: r.modified,
	}
	e.Type = TypeLabel(e.Name(), e.IsDir)
	return e
}

// Parse reconstructs the archive's entry tree from raw `l -slt` output.
//
// The scanner is a two-state machine: everything before the "----------"
// separator is header noise and skipped; after it, blank lines delimit
// per-entry blocks of "Key = Value" lines. Malformed lines inside a block
// are ignored rather than failing the whole listing.
//
// Post-processing guarantees the tree invariants: duplicate paths keep the
// first occurrence, every ancestor directory exists even when the tool
// lists no block for it, and entries sort directories-first then by path.
func Parse(output string) *Tree {
	raw := scanBlocks(output)

	entries := make([]Entry, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		e := r.toEntry()
		if _, dup := seen[e.Path]; dup {
			continue
		}
		seen[e.Path] = struct{}{}
		entries = append(entries, e)
	}

	entries = synthesizeAncestors(entries, seen)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Path < entries[j].Path
	})

	return newTree(entries)
}

func scanBlocks(output string) []rawEntry {
	var (
		state   = stateHeader
		current rawEntry
		open    bool // current holds at least one parsed field
		raw     []rawEntry
	)

	flush := func() {
		if open && current.path != "" {
			raw = append(raw, current)
		}
		current.reset()
		open = false
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")

		switch state {
		case stateHeader:
			if strings.TrimSpace(line) == blockSeparator {
				state = stateBlocks
			}

		case stateBlocks:
			if strings.TrimSpace(line) == "" {
				flush()
				continue
			}
			key, value, ok := splitKeyValue(line)
			if !ok {
				continue
			}
			open = true
			switch key {
			case "Path":
				current.path = strings.ReplaceAll(value, `\`, "/")
			case "Size":
				// Directories and some formats leave Size blank; treat
				// anything unparsable as zero.
				if n, err := strconv.ParseUint(value, 10, 64); err == nil {
					current.size = n
				}
			case "Folder":
				if value == "+" {
					current.isDir = true
				}
			case "Attributes":
				if strings.HasPrefix(value, "D") {
					current.isDir = true
				}
			case "Modified":
				current.modified = value
			}
		}
	}
	flush()

	return raw
}

func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.Index(line, " = ")
	if idx < 0 {
		return "", "", false
	}
	return line[:idx], line[idx+3:], true
}

// synthesizeAncestors adds a directory entry for every ancestor path that
// the tool never listed explicitly. Solid and stream-only archives often
// record files without their containing folders.
func synthesizeAncestors(entries []Entry, seen map[string]struct{}) []Entry {
	for _, e := range entries {
		trimmed := strings.TrimSuffix(e.Path, "/")
		segments := strings.Split(trimmed, "/")
		prefix := ""
		for _, seg := range segments[:len(segments)-1] {
			prefix += seg + "/"
			if _, ok := seen[prefix]; ok {
				continue
			}
			seen[prefix] = struct{}{}
			entries = append(entries, Entry{
				Path:  prefix,
				IsDir: true,
				Type:  DirectoryLabel,
			})
		}
	}
	return entries
}
