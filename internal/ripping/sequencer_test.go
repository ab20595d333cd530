package ripping_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ConnorNovak/cd-ripper/internal/logging"
	"github.com/ConnorNovak/cd-ripper/internal/ripping"
	"github.com/ConnorNovak/cd-ripper/internal/services"
)

// fakeRipper deposits a configurable number of trackNN.cdda.wav files per
// invocation, mimicking cdparanoia batch output.
type fakeRipper struct {
	trackCounts []int
	calls       int
	err         error
}

func (f *fakeRipper) Rip(ctx context.Context, destDir string) error {
	if f.err != nil {
		return f.err
	}
	if f.calls >= len(f.trackCounts) {
		return fmt.Errorf("unexpected rip call %d", f.calls)
	}
	count := f.trackCounts[f.calls]
	f.calls++
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("track%02d.cdda.wav", i)
		if err := os.WriteFile(filepath.Join(destDir, name), []byte("pcm"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func noAck(string) error { return nil }

func TestRipAlbumSingleDisc(t *testing.T) {
	albumDir := t.TempDir()
	ripper := &fakeRipper{trackCounts: []int{3}}
	seq, err := ripping.New(ripper, logging.NewNop(), noAck)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := seq.RipAlbum(context.Background(), albumDir, 1); err != nil {
		t.Fatalf("RipAlbum returned error: %v", err)
	}

	rawDir := filepath.Join(albumDir, "raw")
	for _, want := range []string{"cd01track01.wav", "cd01track02.wav", "cd01track03.wav"} {
		if _, err := os.Stat(filepath.Join(rawDir, want)); err != nil {
			t.Fatalf("expected %s in raw dir: %v", want, err)
		}
	}
}

func TestRipAlbumOffsetsAcrossDiscs(t *testing.T) {
	albumDir := t.TempDir()
	ripper := &fakeRipper{trackCounts: []int{10, 2}}
	seq, err := ripping.New(ripper, logging.NewNop(), noAck)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := seq.RipAlbum(context.Background(), albumDir, 2); err != nil {
		t.Fatalf("RipAlbum returned error: %v", err)
	}

	rawDir := filepath.Join(albumDir, "raw")
	// Disc 2's first ripped track (raw index 1) lands at index 11.
	for _, want := range []string{"cd01track10.wav", "cd02track11.wav", "cd02track12.wav"} {
		if _, err := os.Stat(filepath.Join(rawDir, want)); err != nil {
			t.Fatalf("expected %s in raw dir: %v", want, err)
		}
	}
	entries, err := os.ReadDir(rawDir)
	if err != nil {
		t.Fatalf("read raw dir: %v", err)
	}
	if len(entries) != 12 {
		t.Fatalf("expected 12 relocated tracks, got %d", len(entries))
	}
}

func TestRipAlbumPromptsPerDisc(t *testing.T) {
	albumDir := t.TempDir()
	var prompts []string
	ack := func(msg string) error {
		prompts = append(prompts, msg)
		return nil
	}
	seq, err := ripping.New(&fakeRipper{trackCounts: []int{1, 1}}, logging.NewNop(), ack)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := seq.RipAlbum(context.Background(), albumDir, 2); err != nil {
		t.Fatalf("RipAlbum returned error: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(prompts))
	}
	if prompts[0] != "Load CD 1, then press <Enter>:" || prompts[1] != "Load CD 2, then press <Enter>:" {
		t.Fatalf("unexpected prompts: %v", prompts)
	}
}

func TestRipAlbumDryRunDoesNotTouchFilesystem(t *testing.T) {
	albumDir := t.TempDir()
	seq, err := ripping.New(&fakeRipper{trackCounts: []int{2}}, logging.NewNop(), noAck,
		ripping.WithDryRun(true))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := seq.RipAlbum(context.Background(), albumDir, 1); err != nil {
		t.Fatalf("RipAlbum returned error: %v", err)
	}

	entries, err := os.ReadDir(albumDir)
	if err != nil {
		t.Fatalf("read album dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry run mutated the album dir: %v", entries)
	}

	moves := seq.Moves()
	if len(moves) != 2 {
		t.Fatalf("expected 2 recorded moves, got %d", len(moves))
	}
	rawDir := filepath.Join(albumDir, "raw")
	if moves[0].Dst != filepath.Join(rawDir, "cd01track01.wav") {
		t.Fatalf("unexpected first move: %+v", moves[0])
	}
	if moves[1].Dst != filepath.Join(rawDir, "cd01track02.wav") {
		t.Fatalf("unexpected second move: %+v", moves[1])
	}
}

func TestRipAlbumRipperFailureIsFatal(t *testing.T) {
	cause := errors.New("scratched disc")
	seq, err := ripping.New(&fakeRipper{err: cause}, logging.NewNop(), noAck)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = seq.RipAlbum(context.Background(), t.TempDir(), 1)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain, got %v", err)
	}
}

func TestRipAlbumMissingAlbumDir(t *testing.T) {
	seq, err := ripping.New(&fakeRipper{}, logging.NewNop(), noAck)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	err = seq.RipAlbum(context.Background(), filepath.Join(t.TempDir(), "absent"), 1)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRipAlbumRejectsZeroDiscs(t *testing.T) {
	seq, err := ripping.New(&fakeRipper{}, logging.NewNop(), noAck)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := seq.RipAlbum(context.Background(), t.TempDir(), 0); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestDiscPrefixPadding(t *testing.T) {
	if got := ripping.DiscPrefix(1); got != "cd01track" {
		t.Fatalf("DiscPrefix(1) = %q", got)
	}
	if got := ripping.DiscPrefix(9); got != "cd09track" {
		t.Fatalf("DiscPrefix(9) = %q", got)
	}
	if got := ripping.DiscPrefix(12); got != "cd12track" {
		t.Fatalf("DiscPrefix(12) = %q", got)
	}
}
