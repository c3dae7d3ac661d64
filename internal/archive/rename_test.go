package archive

import (
	"context"
	"strings"
	"testing"

	"github.com/Cyclone1070/soarzip/internal/sevenzip"
)

func TestRenamedPath(t *testing.T) {
	tests := []struct {
		oldPath string
		newName string
		want    string
	}{
		{"docs/readme.txt", "notes.txt", "docs/notes.txt"},
		{"a.txt", "b.txt", "b.txt"},
		{"a/b/c.txt", "d.txt", "a/b/d.txt"},
	}

	for _, tt := range tests {
		if got := renamedPath(tt.oldPath, tt.newName); got != tt.want {
			t.Errorf("renamedPath(%q, %q) = %q, want %q", tt.oldPath, tt.newName, got, tt.want)
		}
	}
}

func TestRenameSequence(t *testing.T) {
	mgr, run, fs := newTestManager()

	err := mgr.Rename(context.Background(), "a.zip", "docs/readme.txt", "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(run.calls) != 3 {
		t.Fatalf("expected extract, delete and add, got %d calls", len(run.calls))
	}
	if run.calls[0].args[0] != "e" || run.calls[1].args[0] != "d" || run.calls[2].args[0] != "a" {
		t.Fatalf("steps out of order: %v", run.calls)
	}

	if run.callWith("d", "docs/readme.txt") == -1 {
		t.Errorf("original entry was not deleted, calls: %v", run.calls)
	}
	if run.callWith("-sidocs/notes.txt") == -1 {
		t.Errorf("add does not target the renamed path, calls: %v", run.calls)
	}

	if len(fs.renames) != 1 {
		t.Fatalf("expected one local rename, got %d", len(fs.renames))
	}
	if !strings.HasSuffix(fs.renames[0][0], "readme.txt") || !strings.HasSuffix(fs.renames[0][1], "notes.txt") {
		t.Errorf("unexpected local rename: %v", fs.renames[0])
	}
	if len(fs.removed) == 0 {
		t.Error("scratch directory was not cleaned up")
	}
}

func TestRenameRootLevelEntry(t *testing.T) {
	mgr, run, _ := newTestManager()

	if err := mgr.Rename(context.Background(), "a.zip", "a.txt", "b.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No leading separator on the new path.
	if run.callWith("-sib.txt") == -1 {
		t.Errorf("root rename should target bare leaf name, calls: %v", run.calls)
	}
}

func TestRenameSameNameIsNoOp(t *testing.T) {
	mgr, run, _ := newTestManager()

	if err := mgr.Rename(context.Background(), "a.zip", "docs/readme.txt", "readme.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.calls) != 0 {
		t.Error("unchanged name must not spawn the tool")
	}
}

func TestRenameAbortsOnExtractFailure(t *testing.T) {
	mgr, run, fs := newTestManager()
	run.respond = func(call int, args []string) (*sevenzip.Result, error) {
		return failExit("No such entry"), nil
	}

	err := mgr.Rename(context.Background(), "a.zip", "x.txt", "y.txt")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(run.calls) != 1 {
		t.Errorf("later steps ran after a failed extract: %d calls", len(run.calls))
	}
	if len(fs.removed) == 0 {
		t.Error("scratch directory must be cleaned up on every exit path")
	}
}
