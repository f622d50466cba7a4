package store

import (
	"errors"
	"testing"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("EDITOR", "nvim")
	t.Setenv("NOTES", "/tmp/notes")
	t.Setenv("DAILY_NOTES", "/tmp/daily")
	t.Setenv("PAGER", "less")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Editor() != "nvim" {
		t.Fatalf("expected editor nvim, got %q", cfg.Editor())
	}
	if cfg.Pager() != "less" {
		t.Fatalf("expected pager less, got %q", cfg.Pager())
	}

	dir, err := cfg.BaseDirectory(false)
	if err != nil {
		t.Fatalf("base directory: %v", err)
	}
	if dir != "/tmp/notes" {
		t.Fatalf("expected /tmp/notes, got %q", dir)
	}

	dir, err = cfg.BaseDirectory(true)
	if err != nil {
		t.Fatalf("base directory (dated): %v", err)
	}
	if dir != "/tmp/daily" {
		t.Fatalf("expected /tmp/daily, got %q", dir)
	}
}

func TestLoadConfigPrefixedEnvWins(t *testing.T) {
	t.Setenv("NOTE_EDITOR", "vim")
	t.Setenv("EDITOR", "nvim")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Editor() != "vim" {
		t.Fatalf("expected NOTE_EDITOR to win, got %q", cfg.Editor())
	}
}

func TestBaseDirectoryDailyFallsBackToNotes(t *testing.T) {
	cfg := &fileConfig{Notes: "/tmp/notes"}
	dir, err := cfg.BaseDirectory(true)
	if err != nil {
		t.Fatalf("base directory: %v", err)
	}
	if dir != "/tmp/notes" {
		t.Fatalf("expected /tmp/notes, got %q", dir)
	}
}

func TestBaseDirectoryMissingConfiguration(t *testing.T) {
	cfg := &fileConfig{}
	if _, err := cfg.BaseDirectory(false); !errors.Is(err, ErrMissingConfiguration) {
		t.Fatalf("expected ErrMissingConfiguration, got %v", err)
	}
}
