// Package note composes note file paths and markdown prefill text.
package note

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultFormat is the file extension notes are composed with.
const DefaultFormat = "md"

// ErrMissingComponents reports that no filename component was supplied.
var ErrMissingComponents = errors.New("at least one filename component is required")

// Note points at a single note file. An empty Path stands for an untitled
// buffer that has not been given a place on disk.
type Note struct {
	Path string
}

// Untitled reports whether the note has no backing file.
func (n *Note) Untitled() bool {
	return n == nil || n.Path == ""
}

// ComposePath joins the non-blank components with underscores, appends the
// format extension, and places the file under directory.
func ComposePath(directory string, components []string, format string) (string, error) {
	if format == "" {
		format = DefaultFormat
	}
	kept := make([]string, 0, len(components))
	for _, c := range components {
		if strings.TrimSpace(c) != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return "", ErrMissingComponents
	}
	filename := strings.Join(kept, "_") + "." + format
	return filepath.Join(directory, filename), nil
}
