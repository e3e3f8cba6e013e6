package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeywordsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the keyword vocabulary by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := root.generator()
			if err != nil {
				return err
			}

			guide := gen.KeywordGuide()
			if root.text {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), root.formatter().FormatKeywordGuide(guide))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), guide)
		},
	}
}
