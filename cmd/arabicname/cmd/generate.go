package cmd

import (
	"fmt"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenerateCommand(root *rootOptions) *cobra.Command {
	var (
		gender string
		style  string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "generate [keyword...]",
		Short: "Generate names from keywords",
		Example: "  arabicname generate star brave --gender male --style royal --count 5\n" +
			"  arabicname generate --style poetic",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedStyle, ok := domain.ParseStyle(style)
			if !ok {
				return errors.NewValidationError(
					fmt.Sprintf("unknown style %q (want one of %v)", style, domain.AllStyles()),
					"style", style,
				)
			}

			gen, err := root.generator()
			if err != nil {
				return err
			}

			result := gen.Generate(cmd.Context(), domain.GenerationRequest{
				Keywords: args,
				Gender:   domain.ParseGender(gender),
				Style:    parsedStyle,
				Count:    count,
			})

			if root.text {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), root.formatter().FormatGeneration(result))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&gender, "gender", "g", string(domain.GenderAny), "male, female or any")
	cmd.Flags().StringVarP(&style, "style", "s", string(domain.StyleTraditional), "traditional, modern, royal, poetic or religious")
	cmd.Flags().IntVarP(&count, "count", "n", domain.DefaultNameCount, "number of names (clamped to 1..10)")
	return cmd
}
