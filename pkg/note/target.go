package note

import (
	"time"

	"github.com/podratz/note/pkg/dates"
	"github.com/podratz/note/pkg/store"
)

// ResolveTarget derives the note for the given date token and name. Either
// may be empty, but not both. Dated notes are placed under the daily-notes
// directory when one is configured.
func ResolveTarget(cfg store.Config, dateChoice, name string, now time.Time) (*Note, error) {
	var components []string
	dated := false
	if dateChoice != "" {
		resolved, err := dates.Resolve(dateChoice, now)
		if err != nil {
			return nil, err
		}
		components = append(components, resolved.Apply(now))
		dated = true
	}
	if name != "" {
		components = append(components, name)
	}
	if len(components) == 0 {
		return nil, ErrMissingComponents
	}

	directory, err := cfg.BaseDirectory(dated)
	if err != nil {
		return nil, err
	}
	path, err := ComposePath(directory, components, "")
	if err != nil {
		return nil, err
	}
	return &Note{Path: path}, nil
}
