package ffmpeg_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ConnorNovak/cd-ripper/internal/services/ffmpeg"
)

type fakeExecutor struct {
	binary string
	args   []string
	err    error
}

func (f *fakeExecutor) Run(ctx context.Context, binary string, args []string) error {
	f.binary = binary
	f.args = append([]string(nil), args...)
	return f.err
}

func writeWav(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	return path
}

func TestTranscodeBuildsExpectedInvocation(t *testing.T) {
	exec := &fakeExecutor{}
	client, err := ffmpeg.New("ffmpeg", 0, ffmpeg.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	dir := t.TempDir()
	wav := writeWav(t, dir, "cd01track01.wav")
	out := t.TempDir()

	got, err := client.Transcode(context.Background(), wav, out)
	if err != nil {
		t.Fatalf("Transcode returned error: %v", err)
	}
	want := filepath.Join(out, "cd01track01.mp3")
	if got != want {
		t.Fatalf("output path = %q, want %q", got, want)
	}

	expected := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", wav,
		"-acodec", "mp3",
		"-y", want,
	}
	if !slices.Equal(exec.args, expected) {
		t.Fatalf("args = %v, want %v", exec.args, expected)
	}
}

func TestTranscodeDefaultsOutputDirToSource(t *testing.T) {
	client, err := ffmpeg.New("ffmpeg", 0, ffmpeg.WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	dir := t.TempDir()
	wav := writeWav(t, dir, "track02.wav")

	got, err := client.Transcode(context.Background(), wav, "")
	if err != nil {
		t.Fatalf("Transcode returned error: %v", err)
	}
	if got != filepath.Join(dir, "track02.mp3") {
		t.Fatalf("unexpected output path: %q", got)
	}
}

func TestTranscodeMissingInput(t *testing.T) {
	client, err := ffmpeg.New("ffmpeg", 0, ffmpeg.WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Transcode(context.Background(), filepath.Join(t.TempDir(), "absent.wav"), ""); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestTranscodePropagatesCommandFailure(t *testing.T) {
	cause := errors.New("exit status 1")
	client, err := ffmpeg.New("ffmpeg", 0, ffmpeg.WithExecutor(&fakeExecutor{err: cause}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	wav := writeWav(t, t.TempDir(), "track01.wav")
	if _, err := client.Transcode(context.Background(), wav, ""); !errors.Is(err, cause) {
		t.Fatalf("expected wrapped command failure, got %v", err)
	}
}
