// Package recent lists recently opened notes from the history store.
package recent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/podratz/note/pkg/printers"
	"github.com/podratz/note/pkg/store"
)

// Recent prints the note-open history, newest first, restricted to the
// Since window.
type Recent struct {
	Since time.Duration
	JSON  bool

	Now         time.Time
	Persistence store.Persistence
}

func (r *Recent) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not list recent notes, no persistence")
	}
	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}
	records := r.filtered(now, r.Persistence.List(ctx))

	if r.JSON {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("Recent", len(records))
	if len(records) == 0 {
		pp.None()
		return nil
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Opened"), bold.Sprint("Note"), bold.Sprint("Title"))
	for _, rec := range records {
		tbl.AddRow(faint.Sprint(rec.Opened.Local().Format("2006-01-02 15:04")), rec.Path, rec.Title)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func (r *Recent) filtered(now time.Time, all []*store.Record) []*store.Record {
	if r.Since <= 0 {
		return all
	}
	cutoff := now.Add(-r.Since)
	c := make([]*store.Record, 0, len(all))
	for _, rec := range all {
		if rec.Opened.Before(cutoff) {
			continue
		}
		c = append(c, rec)
	}
	return c
}
