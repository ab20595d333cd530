package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Transcoder defines the behaviour required by the album pipeline.
type Transcoder interface {
	Transcode(ctx context.Context, wavPath, outputDir string) (string, error)
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    Executor
}

// New constructs an ffmpeg client.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Transcode converts wavPath into <stem>.mp3 inside outputDir and returns
// the output path.
func (c *Client) Transcode(ctx context.Context, wavPath, outputDir string) (string, error) {
	if wavPath == "" {
		return "", errors.New("input path required")
	}
	info, err := os.Stat(wavPath)
	if err != nil {
		return "", fmt.Errorf("input file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input %s is a directory", wavPath)
	}
	if outputDir == "" {
		outputDir = filepath.Dir(wavPath)
	}
	dirInfo, err := os.Stat(outputDir)
	if err != nil {
		return "", fmt.Errorf("output directory: %w", err)
	}
	if !dirInfo.IsDir() {
		return "", fmt.Errorf("output %s is not a directory", outputDir)
	}

	base := filepath.Base(wavPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	outputPath := filepath.Join(outputDir, stem+".mp3")

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", wavPath,
		"-acodec", "mp3",
		"-y", outputPath,
	}
	if err := c.exec.Run(runCtx, c.binary, args); err != nil {
		return "", fmt.Errorf("ffmpeg transcode: %w", err)
	}
	return outputPath, nil
}

var _ Transcoder = (*Client)(nil)

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(output))
		if trimmed != "" {
			return fmt.Errorf("command failed: %w: %s", err, trimmed)
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}
