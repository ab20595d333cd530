package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConnorNovak/cd-ripper/internal/console"
	"github.com/ConnorNovak/cd-ripper/internal/ripping"
	"github.com/ConnorNovak/cd-ripper/internal/services/cdparanoia"
)

func newRipCommand(ctx *commandContext) *cobra.Command {
	var discCount int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rip <album-dir>",
		Short: "Rip the discs of an album into <album-dir>/raw",
		Long: "Rip rips each disc of an album in sequence, prompting before every\n" +
			"disc, and collects the tracks into <album-dir>/raw as one continuously\n" +
			"numbered set of .wav files.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			client, err := cdparanoia.New(cfg.Tools.Cdparanoia, cfg.Tools.RipTimeout,
				cdparanoia.WithLogger(logger))
			if err != nil {
				return err
			}
			prompter := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			seq, err := ripping.New(client, logger, prompter.Acknowledge, ripping.WithDryRun(dryRun))
			if err != nil {
				return err
			}

			if err := seq.RipAlbum(cmd.Context(), args[0], discCount); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				rows := make([][]string, 0, len(seq.Moves()))
				for _, move := range seq.Moves() {
					rows = append(rows, []string{move.Src, move.Dst})
				}
				printTable(out, []column{{header: "Source"}, {header: "Destination"}}, rows)
				fmt.Fprintf(out, "Dry run: %d moves planned, nothing was written\n", len(rows))
				return nil
			}
			fmt.Fprintf(out, "Ripped %d discs into %s/raw\n", discCount, args[0])
			return nil
		},
	}

	cmd.Flags().IntVarP(&discCount, "discs", "n", 1, "Number of discs in the album")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print planned file moves instead of executing them")
	return cmd
}
