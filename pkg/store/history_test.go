package store

import (
	"context"
	"testing"
	"time"
)

type testConfig struct {
	history string
}

func (t testConfig) Editor() string { return "" }

func (t testConfig) Pager() string { return "" }

func (t testConfig) BaseDirectory(bool) (string, error) { return "", ErrMissingConfiguration }

func (t testConfig) HistoryPath() (string, error) { return t.history, nil }

func TestHistoryRoundtrip(t *testing.T) {
	base := t.TempDir()
	h, err := LoadHistory(testConfig{history: base})
	if err != nil {
		t.Fatalf("load history: %v", err)
	}

	now := time.Now()
	older := &Record{
		Path:   "/notes/2020-03-17.md",
		Opened: Timestamp{Time: now.Add(-24 * time.Hour)},
	}
	newer := &Record{
		Path:   "/notes/2020-03-18_standup.md",
		Title:  "Work/Standup",
		Opened: Timestamp{Time: now},
	}
	if err := h.Store(older); err != nil {
		t.Fatalf("store older: %v", err)
	}
	if err := h.Store(newer); err != nil {
		t.Fatalf("store newer: %v", err)
	}

	all := h.List(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].Path != newer.Path {
		t.Fatalf("expected newest first, got %q", all[0].Path)
	}
	if all[0].Title != "Work/Standup" {
		t.Fatalf("expected title to survive, got %q", all[0].Title)
	}
	if !all[0].Opened.SameDay(now) {
		t.Fatalf("expected opened timestamp on %v, got %v", now, all[0].Opened)
	}
}

func TestHistoryStoreAssignsID(t *testing.T) {
	base := t.TempDir()
	h, err := LoadHistory(testConfig{history: base})
	if err != nil {
		t.Fatalf("load history: %v", err)
	}

	r := &Record{Path: "/notes/ideas.md", Opened: Timestamp{Time: time.Now()}}
	if err := h.Store(r); err != nil {
		t.Fatalf("store: %v", err)
	}
	if r.ID == "" {
		t.Fatalf("expected an assigned ID")
	}
}
