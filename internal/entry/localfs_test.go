package entry

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewLocalEntry_MissingPath(t *testing.T) {
	if ent := NewLocalEntry(filepath.Join(t.TempDir(), "nope")); ent != nil {
		t.Errorf("expected nil entry for a missing path, got %v", ent)
	}
}

func TestNewLocalEntry_FileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.dtl"), "data")

	if ent := NewLocalEntry(filepath.Join(dir, "a.dtl")); ent == nil || ent.IsDirectory() {
		t.Errorf("expected a file entry, got %v", ent)
	}
	if ent := NewLocalEntry(dir); ent == nil || !ent.IsDirectory() {
		t.Errorf("expected a directory entry, got %v", ent)
	}
}

func TestTraverse_LocalTree(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "FolderA")
	writeFile(t, filepath.Join(root, "x.dtl"), "x-bytes")
	writeFile(t, filepath.Join(root, "sub", "nested", "y.dtl"), "y-bytes")

	items, err := Traverse(context.Background(), []Entry{NewLocalEntry(root)})
	if err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	got := relativePaths(items)
	sort.Strings(got)
	want := []string{"FolderA/sub/nested/y.dtl", "FolderA/x.dtl"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected relative path %q, got %q", want[i], got[i])
		}
	}

	for _, item := range items {
		if len(item.Data) == 0 {
			t.Errorf("expected content for %s", item.Name)
		}
	}
}

func TestLocalDir_PagesUntilExhausted(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "big")
	for _, name := range []string{"a.dtl", "b.dtl", "c.dtl", "d.dtl", "e.dtl"} {
		writeFile(t, filepath.Join(root, name), "data")
	}

	dir, ok := NewLocalEntry(root).(DirectoryEntry)
	if !ok {
		t.Fatal("expected a directory entry")
	}

	var all []Entry
	var token string
	pages := 0
	for {
		children, next, err := dir.List(context.Background(), 2, token)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		all = append(all, children...)
		pages++
		if next == "" {
			break
		}
		token = next
	}

	if len(all) != 5 {
		t.Fatalf("expected 5 children across pages, got %d", len(all))
	}
	if pages < 3 {
		t.Errorf("expected the listing to span at least 3 pages, got %d", pages)
	}
}
