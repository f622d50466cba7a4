package commands

import (
	"github.com/spf13/cobra"

	"github.com/podratz/note/pkg/commands/options"
	"github.com/podratz/note/pkg/runner/export"
	"github.com/podratz/note/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	no := &options.NoteOptions{}

	cmd := &cobra.Command{
		Use:   "export FORMAT",
		Short: "Export a note through pandoc",
		Example: `
note export -d today pdf
note export -n ideas html
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			e := export.Export{
				DateChoice: no.Date,
				Name:       no.Name,
				Format:     args[0],
				Config:     cfg,
			}
			return output.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddNoteArgs(cmd, no)
	topLevel.AddCommand(cmd)
}
