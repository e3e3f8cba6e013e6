package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMeaningCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "meaning <name>",
		Short:   "Explain the parts of a name",
		Example: "  arabicname meaning Najm ibn Shuja",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := root.generator()
			if err != nil {
				return err
			}

			meaning := gen.Interpret(strings.Join(args, " "))
			if root.text {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), root.formatter().FormatMeaning(meaning))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), meaning)
		},
	}
}
