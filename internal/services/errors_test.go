package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ConnorNovak/cd-ripper/internal/services"
)

func TestWrapTagsSentinelAndChainsCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := services.Wrap(services.ErrExternalTool, "transcoding", "ffmpeg", "conversion failed", cause)

	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool classification, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive the chain")
	}
	msg := err.Error()
	for _, want := range []string{"transcoding", "ffmpeg", "conversion failed", "exit status 1"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrNotFound, "matching", "scan", "no such directory", nil)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsToExternalTool(t *testing.T) {
	err := services.Wrap(nil, "ripping", "cdparanoia", "", errors.New("boom"))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected default ErrExternalTool marker, got %v", err)
	}
}

func TestExitCode(t *testing.T) {
	if got := services.ExitCode(nil); got != 0 {
		t.Fatalf("nil error exit code = %d, want 0", got)
	}
	if got := services.ExitCode(errors.New("any")); got != 1 {
		t.Fatalf("error exit code = %d, want 1", got)
	}
}
