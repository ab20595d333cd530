package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ConnorNovak/cd-ripper/internal/console"
	"github.com/ConnorNovak/cd-ripper/internal/pipeline"
	"github.com/ConnorNovak/cd-ripper/internal/services/ffmpeg"
	"github.com/ConnorNovak/cd-ripper/internal/services/mid3v2"
)

func newAlbumCommand(ctx *commandContext) *cobra.Command {
	var configFile string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "album <album-dir>",
		Short: "Convert, match, and tag the music in an album directory",
		Long: "Album loads tag metadata from the album's JSON config file, converts\n" +
			"any .wav files to .mp3, matches the configured song titles to files,\n" +
			"and writes the tags.",
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

			transcoder, err := ffmpeg.New(cfg.Tools.FFmpeg, cfg.Tools.TranscodeTimeout)
			if err != nil {
				return err
			}
			tagger, err := mid3v2.New(cfg.Tools.Mid3v2)
			if err != nil {
				return err
			}
			prompter := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			p, err := pipeline.New(transcoder, tagger, logger, prompter.Confirm,
				pipeline.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			pairs, err := p.Run(cmd.Context(), args[0], configFile, outputDir)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(pairs))
			for i, pair := range pairs {
				rows = append(rows, []string{strconv.Itoa(i + 1), pair.Title, pair.Path})
			}
			printTable(cmd.OutOrStdout(), []column{
				{header: "Track", alignRight: true},
				{header: "Title"},
				{header: "File"},
			}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config-file", "", "Album JSON config file (default: the sole .json file in the album directory)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for transcoded .mp3 files (default: the album directory)")
	return cmd
}
