package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkhach/urban/internal/player"
	"github.com/tkhach/urban/internal/urbandict"
)

func newPlayCommand() *cobra.Command {
	var sampleIndex int
	var definitionIndex int
	var noBlock bool

	command := cobra.Command{
		Use:   "play <word>",
		Short: "Play a definition's sound sample",
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

			samplePlayer := player.New(client, player.Options{
				Command:           cfg.Player.Command,
				WarnIfUnavailable: cfg.Player.WarnIfUnavailable,
			})
			defer func() {
				_ = samplePlayer.Close()
			}()

			ctx := cmd.Context()
			definition, err := client.Define(ctx, word, definitionIndex)
			if err != nil {
				return fmt.Errorf("client.Define > %w", err)
			}
			if err := samplePlayer.PlayDefinition(ctx, definition, sampleIndex, !noBlock); err != nil {
				return fmt.Errorf("samplePlayer.PlayDefinition > %w", err)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.IntVar(&sampleIndex, "sample", 0, "index of the sound sample to play")
	flags.IntVar(&definitionIndex, "definition", 0, "index of the definition to take samples from")
	flags.BoolVar(&noBlock, "no-block", false, "return immediately instead of waiting for playback to finish")
	return &command
}
