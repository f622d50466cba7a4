package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/podratz/note/pkg/commands/options"
	"github.com/podratz/note/pkg/runner/recent"
	"github.com/podratz/note/pkg/store"
	"github.com/podratz/note/pkg/timeutil"
)

func addRecent(topLevel *cobra.Command) {
	so := &options.SinceOptions{}

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened notes",
		Example: `
note recent
note recent --since 3d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.LoadHistory(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			since, err := timeutil.ParseWindow(so.Window)
			if err != nil {
				return output.HandleError(err)
			}
			r := recent.Recent{
				Since:       since,
				JSON:        output.JSON,
				Persistence: p,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddSinceArg(cmd, so, timeutil.DefaultWindow)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
