// Package open creates or opens a note in the configured editor.
package open

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/podratz/note/pkg/editor"
	"github.com/podratz/note/pkg/note"
	"github.com/podratz/note/pkg/store"
)

// Open resolves a note target from the date token and name, builds the
// markdown prefill, and launches the editor. When neither a date nor a
// name is given, or no notes directory is configured, the editor opens an
// untitled buffer instead.
type Open struct {
	DateChoice string
	Name       string
	Title      string
	Body       string

	Now         time.Time
	Config      store.Config
	Persistence store.Persistence

	// Launch overrides the editor invocation, for tests.
	Launch func(ctx context.Context, editorName, path, prefill string) error
}

func (o *Open) Do(ctx context.Context) error {
	if o.Config == nil {
		return errors.New("can not open, no config")
	}
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}

	target, err := note.ResolveTarget(o.Config, o.DateChoice, o.Name, now)
	switch {
	case err == nil:
	case errors.Is(err, note.ErrMissingComponents), errors.Is(err, store.ErrMissingConfiguration):
		// Degrade to an untitled buffer rather than aborting.
		target = &note.Note{}
	default:
		return err
	}

	prefill := note.Prefill(o.Title, o.Body)

	if !target.Untitled() && o.Persistence != nil {
		record := &store.Record{
			Path:   target.Path,
			Title:  o.Title,
			Opened: store.Timestamp{Time: now},
		}
		if err := o.Persistence.Store(record); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record note in history: %v\n", err)
		}
	}

	launch := o.Launch
	if launch == nil {
		launch = editor.Open
	}
	return launch(ctx, editor.Resolve(o.Config.Editor()), target.Path, prefill)
}
