package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConnorNovak/cd-ripper/internal/services/mid3v2"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Show the tags currently set on an mp3 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			tagger, err := mid3v2.New(cfg.Tools.Mid3v2)
			if err != nil {
				return err
			}
			output, err := tagger.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
