// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/podratz/note/pkg/dates"
)

// NoteOptions captures the date/name flags that select a note target.
type NoteOptions struct {
	Date string
	Name string
}

// AddNoteArgs wires the note selection flags on the provided command.
func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Provide a date. One of: "+strings.Join(dates.Choices(), ", ")+".")
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Provide a name.")
}
