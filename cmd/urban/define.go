package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tkhach/urban/internal/urbandict"
)

// selector picks between a single definition at a position and the full
// list.
type selector struct {
	all   bool
	index int
}

func (s *selector) Set(val string) error {
	if val == "all" {
		s.all = true
		s.index = 0
		return nil
	}
	index, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid selector: %s", val)
	}
	s.all = false
	s.index = index
	return nil
}

func (s *selector) String() string {
	if s.all {
		return "all"
	}
	return strconv.Itoa(s.index)
}

func (s *selector) Type() string {
	return "index|all"
}

var _ pflag.Value = (*selector)(nil)

func newDefineCommand() *cobra.Command {
	var sel selector
	var maxRetries uint

	command := cobra.Command{
		Use:   "define <word>",
		Short: "Fetch definitions for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			client := urbandict.NewClient(cfg.API.BaseURL)
			defer func() {
				_ = client.Close()
			}()

			ctx := cmd.Context()
			var definitions []urbandict.Definition
			if err := withRetries(ctx, maxRetries, func() error {
				if sel.all {
					all, defineErr := client.DefineAll(ctx, word)
					if defineErr != nil {
						return defineErr
					}
					definitions = all
					return nil
				}
				definition, defineErr := client.Define(ctx, word, sel.index)
				if defineErr != nil {
					return defineErr
				}
				definitions = []urbandict.Definition{definition}
				return nil
			}); err != nil {
				return fmt.Errorf("client.Define > %w", err)
			}

			showDefinitions(definitions)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&sel, "select", `definition to fetch: a zero-based index or "all"`)
	flags.UintVar(&maxRetries, "retries", 0, "number of extra attempts for transient failures")
	return &command
}

func showDefinitions(definitions []urbandict.Definition) {
	for i, definition := range definitions {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%d: %s\n", definition.Index, color.New(color.Bold).Sprint(definition.Word))
		fmt.Println(definition.Definition)
		if definition.Example != "" {
			fmt.Printf("\n%s\n", definition.Example)
		}
		fmt.Printf("%s %s  by %s on %s\n",
			color.GreenString("+%d", definition.Upvotes),
			color.RedString("-%d", definition.Downvotes),
			definition.Author,
			definition.WrittenOn.Format("2006-01-02"),
		)
		fmt.Println(definition.Permalink)
	}
}
