package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/podratz/note/pkg/commands/options"
	"github.com/podratz/note/pkg/dates"
	"github.com/podratz/note/pkg/runner/open"
	"github.com/podratz/note/pkg/store"
)

// configureOpen attaches the canonical note-opening behavior to the root
// command: resolve the target from date/name, prefill from TITLE and the
// input source, then hand the note to the editor.
func configureOpen(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	in := &options.InputOptions{}

	topLevel.Example = `
note -d today
echo "remember the milk" | note -d tomorrow -n groceries
note -n ideas Projects/Garden
`
	topLevel.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return err
		}

		body, err := readBody(in)
		if err != nil {
			return err
		}

		var history store.Persistence
		if p, err := store.LoadHistory(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		} else {
			history = p
		}

		o := open.Open{
			DateChoice:  no.Date,
			Name:        no.Name,
			Title:       strings.Join(args, " "),
			Body:        body,
			Config:      cfg,
			Persistence: history,
		}
		return output.HandleError(o.Do(cmd.Context()))
	}

	options.AddNoteArgs(topLevel, no)
	options.AddInputArg(topLevel, in)

	// TITLE is a free-form remainder; stop flag parsing at the first
	// positional argument.
	topLevel.Flags().SetInterspersed(false)

	_ = topLevel.RegisterFlagCompletionFunc("date", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dates.Choices(), cobra.ShellCompDirectiveNoFileComp
	})
}

// readBody reads the note body from the input file, or from stdin when it
// is not an interactive terminal.
func readBody(in *options.InputOptions) (string, error) {
	if in.Path != "" && in.Path != "-" {
		b, err := os.ReadFile(in.Path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "", nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
