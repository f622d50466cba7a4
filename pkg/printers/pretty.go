// Package printers renders titles and listings for the CLI.
package printers

import (
	"fmt"

	"github.com/fatih/color"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" note")
	default:
		_, _ = c.Println(" notes")
	}
}

func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}
