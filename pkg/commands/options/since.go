package options

import "github.com/spf13/cobra"

// SinceOptions captures the trailing-window flag for listing commands.
type SinceOptions struct {
	Window string
}

// AddSinceArg wires the window flag on the provided command.
func AddSinceArg(cmd *cobra.Command, o *SinceOptions, def string) {
	cmd.Flags().StringVar(&o.Window, "since", def,
		"Restrict to a trailing window, for example 1w, 3d, or 1w2d6h.")
}
