package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "note [flags] [TITLE...]",
		Short: base.Wrap80("Take notes in markdown."),
		Args:  cobra.ArbitraryArgs,
	}

	configureOpen(cmd)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addExport(topLevel)
	addShelf(topLevel)
	addRecent(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
