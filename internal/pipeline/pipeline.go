package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/ConnorNovak/cd-ripper/internal/album"
	"github.com/ConnorNovak/cd-ripper/internal/console"
	"github.com/ConnorNovak/cd-ripper/internal/logging"
	"github.com/ConnorNovak/cd-ripper/internal/matching"
	"github.com/ConnorNovak/cd-ripper/internal/services"
	"github.com/ConnorNovak/cd-ripper/internal/services/ffmpeg"
	"github.com/ConnorNovak/cd-ripper/internal/services/mid3v2"
)

// Option configures the pipeline.
type Option func(*Pipeline)

// WithOutput redirects step banners and progress bars (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.out = w
		}
	}
}

// Pipeline orchestrates the album metadata workflow.
type Pipeline struct {
	logger     *slog.Logger
	transcoder ffmpeg.Transcoder
	tagger     mid3v2.Tagger
	confirm    console.ConfirmFunc
	out        io.Writer
}

// New constructs a pipeline. The confirm callback decides whether an
// existing mp3 may be overwritten during transcoding.
func New(transcoder ffmpeg.Transcoder, tagger mid3v2.Tagger, logger *slog.Logger, confirm console.ConfirmFunc, opts ...Option) (*Pipeline, error) {
	if transcoder == nil {
		return nil, fmt.Errorf("transcoder required")
	}
	if tagger == nil {
		return nil, fmt.Errorf("tagger required")
	}
	if confirm == nil {
		return nil, fmt.Errorf("confirm callback required")
	}
	p := &Pipeline{
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		transcoder: transcoder,
		tagger:     tagger,
		confirm:    confirm,
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run executes the workflow against albumDir and returns the title/file
// mapping that was tagged. configPath and outputDir are optional; an empty
// configPath resolves to the sole .json file in albumDir, an empty
// outputDir keeps transcoded files next to their sources.
func (p *Pipeline) Run(ctx context.Context, albumDir, configPath, outputDir string) ([]matching.Pair, error) {
	info, err := os.Stat(albumDir)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "pipeline", "album directory", "", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrNotFound, "pipeline", "album directory",
			fmt.Sprintf("%s is not a directory", albumDir), nil)
	}
	if outputDir != "" {
		dirInfo, err := os.Stat(outputDir)
		if err != nil {
			return nil, services.Wrap(services.ErrNotFound, "pipeline", "output directory", "", err)
		}
		if !dirInfo.IsDir() {
			return nil, services.Wrap(services.ErrNotFound, "pipeline", "output directory",
				fmt.Sprintf("%s is not a directory", outputDir), nil)
		}
	}

	resolved, err := album.ResolveConfigPath(albumDir, configPath)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "(1) Loading album metadata from %s\n", resolved)
	meta, err := album.Load(resolved)
	if err != nil {
		return nil, err
	}
	p.logger.Info("album metadata loaded",
		logging.String("config", resolved),
		logging.Int("titles", len(meta.Songs)),
	)

	fmt.Fprintln(p.out, "(2) Converting .wav files to .mp3")
	if err := p.transcodeAll(ctx, albumDir, outputDir); err != nil {
		return nil, err
	}

	fmt.Fprintln(p.out, "(3) Attempting to match metadata song titles with files")
	pairs, err := matching.MatchDirectory(meta.Songs, albumDir)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "pipeline", "match titles", "", err)
	}

	fmt.Fprintln(p.out, "(4) Adding metadata to .mp3 files")
	if err := p.tagAll(ctx, meta, pairs); err != nil {
		return nil, err
	}

	return pairs, nil
}

// transcodeAll converts every .wav directly inside albumDir. An existing
// target asks for confirmation: yes overwrites, no keeps the existing mp3
// and skips the conversion.
func (p *Pipeline) transcodeAll(ctx context.Context, albumDir, outputDir string) error {
	entries, err := os.ReadDir(albumDir)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "pipeline", "scan album directory", "", err)
	}
	var wavs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			wavs = append(wavs, filepath.Join(albumDir, entry.Name()))
		}
	}
	if len(wavs) == 0 {
		return nil
	}

	bar := p.newBar(len(wavs), "transcoding")
	for _, wav := range wavs {
		if err := p.transcodeOne(ctx, wav, outputDir); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(p.out)
	return nil
}

func (p *Pipeline) transcodeOne(ctx context.Context, wav, outputDir string) error {
	targetDir := outputDir
	if targetDir == "" {
		targetDir = filepath.Dir(wav)
	}
	base := filepath.Base(wav)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	target := filepath.Join(targetDir, stem+".mp3")

	if _, err := os.Stat(target); err == nil {
		overwrite, err := p.confirm(fmt.Sprintf("%s exists. Overwrite?", target))
		if err != nil {
			return services.Wrap(services.ErrConfiguration, "pipeline", "overwrite confirmation", "", err)
		}
		if !overwrite {
			p.logger.Info("keeping existing file", logging.String("mp3", target))
			return nil
		}
	}

	if _, err := p.transcoder.Transcode(ctx, wav, outputDir); err != nil {
		return services.Wrap(services.ErrExternalTool, "pipeline", "transcode",
			fmt.Sprintf("converting %s", wav), err)
	}
	p.logger.Debug("transcoded file",
		logging.String("wav", wav),
		logging.String("mp3", target),
	)
	return nil
}

// tagAll writes title, track number, and the album-level fields to each
// matched file in order.
func (p *Pipeline) tagAll(ctx context.Context, meta *album.Metadata, pairs []matching.Pair) error {
	bar := p.newBar(len(pairs), "tagging")
	for i, pair := range pairs {
		tags := meta.Tags()
		tags.Title = pair.Title
		tags.Track = i + 1
		if err := p.tagger.Apply(ctx, pair.Path, tags); err != nil {
			return services.Wrap(services.ErrExternalTool, "pipeline", "tag",
				fmt.Sprintf("tagging %s", pair.Path), err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(p.out)
	return nil
}

func (p *Pipeline) newBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(20),
	)
}
