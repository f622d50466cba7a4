// Package shelf lists the markdown notes in a directory.
package shelf

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/podratz/note/pkg/printers"
)

// Info describes one note on the shelf.
type Info struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Shelf lists notes in Directory, optionally restricted to those modified
// within the Since window.
type Shelf struct {
	Directory string
	Since     time.Duration
	JSON      bool

	Now time.Time
}

func (s *Shelf) Do(ctx context.Context) error {
	notes, err := s.Notes()
	if err != nil {
		return err
	}

	if s.JSON {
		b, err := json.Marshal(notes)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount(s.Directory, len(notes))
	if len(notes) == 0 {
		pp.None()
		return nil
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Size"), bold.Sprint("Modified"))
	for _, n := range notes {
		tbl.AddRow(n.Name, fmt.Sprintf("%d", n.Size), faint.Sprint(n.Modified.Format("2006-01-02 15:04")))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Notes reads the shelf directory, newest first. Only markdown files count.
func (s *Shelf) Notes() ([]Info, error) {
	entries, err := os.ReadDir(s.Directory)
	if err != nil {
		return nil, fmt.Errorf("read shelf: %w", err)
	}

	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}
	var cutoff time.Time
	if s.Since > 0 {
		cutoff = now.Add(-s.Since)
	}

	notes := make([]Info, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isMarkdown(e.Name()) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		if !cutoff.IsZero() && fi.ModTime().Before(cutoff) {
			continue
		}
		notes = append(notes, Info{
			Name:     e.Name(),
			Path:     filepath.Join(s.Directory, e.Name()),
			Size:     fi.Size(),
			Modified: fi.ModTime(),
		})
	}
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Modified.Equal(notes[j].Modified) {
			return notes[i].Name < notes[j].Name
		}
		return notes[i].Modified.After(notes[j].Modified)
	})
	return notes, nil
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
