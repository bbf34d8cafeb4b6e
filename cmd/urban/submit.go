package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkhach/urban/internal/urbandict"
)

func newSubmitCommand() *cobra.Command {
	var tags []string
	var giphyURL string

	command := cobra.Command{
		Use:   "submit <word> <definition> <example>",
		Short: "Submit a new definition to the service",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			client := urbandict.NewClient(cfg.API.BaseURL)
			defer func() {
				_ = client.Close()
			}()

			if err := client.Submit(cmd.Context(), urbandict.Submission{
				Word:       args[0],
				Definition: args[1],
				Example:    args[2],
				Tags:       tags,
				GiphyURL:   giphyURL,
			}); err != nil {
				return fmt.Errorf("client.Submit > %w", err)
			}

			fmt.Printf("submitted a definition for %s\n", args[0])
			return nil
		},
	}

	flags := command.Flags()
	flags.StringSliceVar(&tags, "tags", nil, "tags for the definition")
	flags.StringVar(&giphyURL, "giphy", "", "Giphy URL to attach")
	return &command
}
