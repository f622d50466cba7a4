package shelf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func write(t *testing.T, dir, name, content string, modified time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, modified, modified); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
}

func TestNotesListsMarkdownOnly(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	write(t, dir, "a.md", "# a", now.Add(-time.Hour))
	write(t, dir, "b.markdown", "# b", now)
	write(t, dir, "c.txt", "not a note", now)
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	s := Shelf{Directory: dir}
	notes, err := s.Notes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Name != "b.markdown" {
		t.Fatalf("expected newest first, got %q", notes[0].Name)
	}
	if notes[1].Path != filepath.Join(dir, "a.md") {
		t.Fatalf("unexpected path %q", notes[1].Path)
	}
}

func TestNotesSinceWindow(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	write(t, dir, "old.md", "# old", now.Add(-48*time.Hour))
	write(t, dir, "fresh.md", "# fresh", now.Add(-time.Hour))

	s := Shelf{Directory: dir, Since: 24 * time.Hour, Now: now}
	notes, err := s.Notes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 1 || notes[0].Name != "fresh.md" {
		t.Fatalf("expected only fresh.md, got %+v", notes)
	}
}

func TestNotesMissingDirectory(t *testing.T) {
	s := Shelf{Directory: filepath.Join(t.TempDir(), "absent")}
	if _, err := s.Notes(); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
