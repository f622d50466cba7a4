package recent

import (
	"context"
	"testing"
	"time"

	"github.com/podratz/note/pkg/store"
)

func TestFilteredSinceWindow(t *testing.T) {
	now := time.Now()
	all := []*store.Record{
		{Path: "/notes/fresh.md", Opened: store.Timestamp{Time: now.Add(-time.Hour)}},
		{Path: "/notes/old.md", Opened: store.Timestamp{Time: now.Add(-72 * time.Hour)}},
	}
	r := Recent{Since: 24 * time.Hour}
	got := r.filtered(now, all)
	if len(got) != 1 || got[0].Path != "/notes/fresh.md" {
		t.Fatalf("expected only the fresh record, got %+v", got)
	}
}

func TestFilteredNoWindowKeepsAll(t *testing.T) {
	now := time.Now()
	all := []*store.Record{
		{Path: "/notes/a.md", Opened: store.Timestamp{Time: now.Add(-time.Hour)}},
		{Path: "/notes/b.md", Opened: store.Timestamp{Time: now.Add(-1000 * time.Hour)}},
	}
	r := Recent{}
	if got := r.filtered(now, all); len(got) != 2 {
		t.Fatalf("expected all records, got %+v", got)
	}
}

func TestDoRequiresPersistence(t *testing.T) {
	r := Recent{}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected an error without persistence")
	}
}
