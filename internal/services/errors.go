package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExternalTool marks a non-zero exit or launch failure from one of the
	// external binaries (cdparanoia, ffmpeg, mid3v2).
	ErrExternalTool = errors.New("external tool error")
	// ErrValidation marks count-mismatch, ambiguous-match, and no-match
	// failures from title/file matching.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable application or album configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound marks a missing directory or file.
	ErrNotFound = errors.New("not found")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error to the process exit status. Every raised error
// aborts the entry point with a non-zero exit; there is no partial success.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
