package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/podratz/note/pkg/commands/options"
	"github.com/podratz/note/pkg/runner/shelf"
	"github.com/podratz/note/pkg/store"
	"github.com/podratz/note/pkg/timeutil"
)

func addShelf(topLevel *cobra.Command) {
	so := &options.SinceOptions{}

	cmd := &cobra.Command{
		Use:     "shelf [DIR]",
		Aliases: []string{"list", "ls"},
		Short:   "List the notes in a directory",
		Example: `
note shelf
note shelf ~/notes/work --since 1w
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			s := shelf.Shelf{JSON: output.JSON}
			if len(args) > 0 {
				s.Directory = args[0]
			} else {
				dir, err := cfg.BaseDirectory(false)
				if err != nil {
					return output.HandleError(err)
				}
				s.Directory = dir
			}
			if so.Window != "" {
				since, err := timeutil.ParseWindow(so.Window)
				if err != nil {
					return output.HandleError(err)
				}
				s.Since = since
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddSinceArg(cmd, so, "")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
