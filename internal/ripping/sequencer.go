package ripping

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"github.com/ConnorNovak/cd-ripper/internal/console"
	"github.com/ConnorNovak/cd-ripper/internal/fileutil"
	"github.com/ConnorNovak/cd-ripper/internal/logging"
	"github.com/ConnorNovak/cd-ripper/internal/services"
	"github.com/ConnorNovak/cd-ripper/internal/services/cdparanoia"
)

// RawDirName is the album subdirectory receiving relocated tracks.
const RawDirName = "raw"

// trackStemPrefix is the fixed prefix cdparanoia batch mode puts on each
// output file; the two-digit track index follows immediately after it.
const trackStemPrefix = "track"

// Move records one intended relocation.
type Move struct {
	Src string
	Dst string
}

// Option configures the sequencer.
type Option func(*Sequencer)

// WithDryRun records intended moves instead of performing them.
func WithDryRun(enabled bool) Option {
	return func(s *Sequencer) {
		s.dryRun = enabled
	}
}

// Sequencer orchestrates ripping a multi-disc album.
type Sequencer struct {
	client      cdparanoia.Ripper
	logger      *slog.Logger
	acknowledge console.AcknowledgeFunc
	dryRun      bool
	moves       []Move
}

// New constructs a sequencer. The acknowledge callback blocks until the
// operator has loaded the next disc.
func New(client cdparanoia.Ripper, logger *slog.Logger, acknowledge console.AcknowledgeFunc, opts ...Option) (*Sequencer, error) {
	if client == nil {
		return nil, fmt.Errorf("ripper client required")
	}
	if acknowledge == nil {
		return nil, fmt.Errorf("acknowledge callback required")
	}
	s := &Sequencer{
		client:      client,
		logger:      logging.NewComponentLogger(logger, "sequencer"),
		acknowledge: acknowledge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Moves returns the relocations recorded so far. In dry-run mode these are
// the moves a live run would have executed.
func (s *Sequencer) Moves() []Move {
	return append([]Move(nil), s.moves...)
}

// RipAlbum rips discCount discs into albumDir/raw as one continuous track
// sequence.
func (s *Sequencer) RipAlbum(ctx context.Context, albumDir string, discCount int) error {
	info, err := os.Stat(albumDir)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "ripping", "album directory", "", err)
	}
	if !info.IsDir() {
		return services.Wrap(services.ErrNotFound, "ripping", "album directory",
			fmt.Sprintf("%s is not a directory", albumDir), nil)
	}
	if discCount < 1 {
		return services.Wrap(services.ErrConfiguration, "ripping", "disc count",
			fmt.Sprintf("must be at least 1, got %d", discCount), nil)
	}

	rawDir := filepath.Join(albumDir, RawDirName)
	if !s.dryRun {
		lock := flock.New(filepath.Join(albumDir, ".cdrip.lock"))
		locked, err := lock.TryLock()
		if err != nil {
			return services.Wrap(services.ErrConfiguration, "ripping", "session lock", "", err)
		}
		if !locked {
			return services.Wrap(services.ErrConfiguration, "ripping", "session lock",
				fmt.Sprintf("another rip session holds %s", lock.Path()), nil)
		}
		defer func() {
			_ = lock.Unlock()
		}()

		if err := fileutil.EnsureDir(rawDir); err != nil {
			return services.Wrap(services.ErrConfiguration, "ripping", "create raw directory", "", err)
		}
	}

	offset := 0
	for disc := 1; disc <= discCount; disc++ {
		logger := s.logger.With(logging.Int("disc", disc))

		if err := s.acknowledge(fmt.Sprintf("Load CD %d, then press <Enter>:", disc)); err != nil {
			return services.Wrap(services.ErrConfiguration, "ripping", "await disc", "", err)
		}

		scratch, err := os.MkdirTemp("", "cdrip-")
		if err != nil {
			return services.Wrap(services.ErrConfiguration, "ripping", "create scratch directory", "", err)
		}

		logger.Info("ripping disc", logging.String("scratch_dir", scratch))
		if err := s.client.Rip(ctx, scratch); err != nil {
			_ = os.RemoveAll(scratch)
			return services.Wrap(services.ErrExternalTool, "ripping", "cdparanoia",
				fmt.Sprintf("disc %d failed; check the disc for read errors", disc), err)
		}

		relocated, err := s.relocate(scratch, rawDir, disc, offset)
		_ = os.RemoveAll(scratch)
		if err != nil {
			return err
		}
		logger.Info("disc relocated",
			logging.Int("tracks", relocated),
			logging.Int("offset", offset),
		)
		offset += relocated
	}

	s.logger.Info("album ripped",
		logging.Int("discs", discCount),
		logging.Int("tracks", offset),
		logging.Bool("dry_run", s.dryRun),
	)
	return nil
}

// relocate moves every ripped file from scratch into rawDir, renumbering by
// offset, and returns how many files it handled.
func (s *Sequencer) relocate(scratch, rawDir string, disc, offset int) (int, error) {
	entries, err := os.ReadDir(scratch)
	if err != nil {
		return 0, services.Wrap(services.ErrNotFound, "ripping", "scan scratch directory", "", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	prefix := DiscPrefix(disc)
	count := 0
	for _, name := range names {
		index, err := parseTrackIndex(name)
		if err != nil {
			return count, services.Wrap(services.ErrValidation, "ripping", "parse track index", "", err)
		}
		number := index + offset
		dst := filepath.Join(rawDir, prefix+padTrackNumber(number)+filepath.Ext(name))
		src := filepath.Join(scratch, name)

		s.moves = append(s.moves, Move{Src: src, Dst: dst})
		if s.dryRun {
			s.logger.Info("would move file",
				logging.String("src", src),
				logging.String("dst", dst),
			)
		} else {
			if err := fileutil.MoveFile(src, dst); err != nil {
				return count, services.Wrap(services.ErrConfiguration, "ripping", "relocate track", "", err)
			}
			s.logger.Debug("moved file",
				logging.String("src", src),
				logging.String("dst", dst),
			)
		}
		count++
	}
	return count, nil
}

// DiscPrefix returns the raw-track name prefix for a disc, e.g. "cd01track"
// for disc 1.
func DiscPrefix(disc int) string {
	return "cd" + padTrackNumber(disc) + trackStemPrefix
}

// parseTrackIndex extracts the two-digit track index the ripper embeds at a
// fixed offset in the filename stem ("track07.cdda.wav" yields 7).
func parseTrackIndex(name string) (int, error) {
	stem, _, _ := strings.Cut(name, ".")
	if !strings.HasPrefix(stem, trackStemPrefix) || len(stem) < len(trackStemPrefix)+2 {
		return 0, fmt.Errorf("ripped file %q does not follow the %sNN naming convention", name, trackStemPrefix)
	}
	digits := stem[len(trackStemPrefix) : len(trackStemPrefix)+2]
	index, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("ripped file %q has a non-numeric track index: %w", name, err)
	}
	return index, nil
}

// padTrackNumber zero-pads single-digit numbers to two characters; larger
// numbers print as-is.
func padTrackNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}
