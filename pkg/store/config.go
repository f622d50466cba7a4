package store

import (
	"errors"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ErrMissingConfiguration reports that no notes directory is configured.
var ErrMissingConfiguration = errors.New("notes directory is not configured")

// Config is the process-wide configuration, read once at startup.
type Config interface {
	// Editor returns the configured editor program, or "" when unset.
	Editor() string
	// Pager returns the configured pager program, or "" when unset.
	Pager() string
	// BaseDirectory returns the directory notes are composed under. Dated
	// notes prefer the daily-notes directory, falling back to the general
	// notes directory.
	BaseDirectory(dated bool) (string, error)
	// HistoryPath returns the base path of the note-open history store.
	HistoryPath() (string, error)
}

// LoadConfig reads configuration from a .note config file and the
// environment. The NOTE_ prefixed variables win; the historical names
// (EDITOR, NOTES, DAILY_NOTES, PAGER) are consulted when those and the
// config file leave a value unset.
func LoadConfig() (Config, error) {
	viper.SetDefault("history", "~/.note/history")
	viper.SetConfigName(".note") // .yaml is implicit
	viper.SetEnvPrefix("NOTE")
	viper.AutomaticEnv()

	if override := os.Getenv("NOTE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		EditorName: fallback(viper.GetString("editor"), "EDITOR"),
		Notes:      fallback(viper.GetString("notes"), "NOTES"),
		DailyNotes: fallback(viper.GetString("daily_notes"), "DAILY_NOTES"),
		PagerName:  fallback(viper.GetString("pager"), "PAGER"),
		History:    viper.GetString("history"),
	}, nil
}

// fallback returns value, or the first set historical environment variable
// when value is empty.
func fallback(value string, names ...string) string {
	if value != "" {
		return value
	}
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

type fileConfig struct {
	EditorName string `json:"editor"`
	Notes      string `json:"notes"`
	DailyNotes string `json:"daily_notes"`
	PagerName  string `json:"pager"`
	History    string `json:"history"`
}

func (f *fileConfig) Editor() string {
	return f.EditorName
}

func (f *fileConfig) Pager() string {
	return f.PagerName
}

func (f *fileConfig) BaseDirectory(dated bool) (string, error) {
	dir := f.Notes
	if dated && f.DailyNotes != "" {
		dir = f.DailyNotes
	}
	if dir == "" {
		return "", ErrMissingConfiguration
	}
	return homedir.Expand(dir)
}

func (f *fileConfig) HistoryPath() (string, error) {
	return homedir.Expand(f.History)
}
