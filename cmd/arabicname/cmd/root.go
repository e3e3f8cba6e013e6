package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/kapu/arabic-name-bot-go/internal/adapter"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
	"github.com/kapu/arabic-name-bot-go/internal/service/namegen"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	tablesPath string
	text       bool
	seed       uint64
}

// NewRootCommand builds the arabicname command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "arabicname",
		Short:         "Arabic-style name composer",
		Long:          "Compose Arabic-style names from keywords, interpret names and list the keyword vocabulary.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.tablesPath, "tables", "", "load reference tables from a JSON file")
	root.PersistentFlags().BoolVar(&opts.text, "text", false, "print chat-formatted Korean text instead of JSON")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible output (0 = random)")

	root.AddCommand(newGenerateCommand(opts))
	root.AddCommand(newMeaningCommand(opts))
	root.AddCommand(newKeywordsCommand(opts))
	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func (o *rootOptions) generator() (*namegen.Generator, error) {
	store, err := o.store()
	if err != nil {
		return nil, err
	}

	opts := namegen.Options{}
	if o.seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
	}
	return namegen.NewGenerator(store, opts), nil
}

func (o *rootOptions) store() (*namedata.Store, error) {
	if o.tablesPath == "" {
		return namedata.Builtin(), nil
	}

	data, err := os.ReadFile(o.tablesPath)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	var tables namedata.Tables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("decode tables: %w", err)
	}
	return namedata.New(tables)
}

func (o *rootOptions) formatter() *adapter.ResponseFormatter {
	return adapter.NewResponseFormatter("!")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
