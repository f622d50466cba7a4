package options

import "github.com/spf13/cobra"

// InputOptions captures where the note's body text is read from.
type InputOptions struct {
	Path string
}

// AddInputArg wires the input flag. Passing -i without a value, or leaving
// it off entirely, selects standard input.
func AddInputArg(cmd *cobra.Command, o *InputOptions) {
	cmd.Flags().StringVarP(&o.Path, "input", "i", "",
		"Provide input from a file. Defaults to standard input.")
	cmd.Flags().Lookup("input").NoOptDefVal = "-"
}
