package listing

import "strings"

// Tree is a read-only view of an archive's entries.
// Entries are held in display order (directories first, then by path) and
// indexed by their normalized path for direct lookup.
type Tree struct {
	entries []Entry
	byPath  map[string]Entry
}

func newTree(entries []Entry) *Tree {
	byPath := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byPath[e.Path] = e
	}
	return &Tree{entries: entries, byPath: byPath}
}

// Entries returns all entries in display order.
// The returned slice is shared; callers must not modify it.
func (t *Tree) Entries() []Entry {
	return t.entries
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	return len(t.entries)
}

// Get looks up an entry by its normalized path. Directory paths carry a
// trailing slash; Get retries with one appended so callers can pass either
// form.
func (t *Tree) Get(path string) (Entry, bool) {
	if e, ok := t.byPath[path]; ok {
		return e, true
	}
	if !strings.HasSuffix(path, "/") {
		if e, ok := t.byPath[path+"/"]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// Children returns the direct children of the given directory, in display
// order. Pass "" for the archive root.
func (t *Tree) Children(dir string) []Entry {
	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	var out []Entry
	for _, e := range t.entries {
		if e.Parent() == dir {
			out = append(out, e)
		}
	}
	return out
}

// Descendants returns every entry whose path lies under the given
// directory, excluding the directory itself.
func (t *Tree) Descendants(dir string) []Entry {
	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	var out []Entry
	for _, e := range t.entries {
		if e.Path != dir && strings.HasPrefix(e.Path, dir) {
			out = append(out, e)
		}
	}
	return out
}
