package cdparanoia

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/ConnorNovak/cd-ripper/internal/logging"
)

// Ripper defines the behaviour required by the multi-disc sequencer.
type Ripper interface {
	Rip(ctx context.Context, destDir string) error
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, dir, binary string, args []string, onOutput func(string)) error
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

// WithLogger routes the ripper's progress output to the given logger at
// debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "cdparanoia")
		}
	}
}

// Client wraps cdparanoia CLI interactions.
type Client struct {
	binary     string
	ripTimeout time.Duration
	logger     *slog.Logger
	exec       Executor
}

// New constructs a cdparanoia client.
func New(binary string, ripTimeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("cdparanoia binary required")
	}
	client := &Client{
		binary:     binary,
		ripTimeout: time.Duration(ripTimeoutSeconds) * time.Second,
		logger:     logging.NewNop(),
		exec:       commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Rip extracts every track on the loaded disc into destDir. cdparanoia names
// its batch output trackNN.cdda.wav; the command runs with destDir as its
// working directory instead of a shell cd chain.
//
// -X aborts on uncorrectable read errors, -B rips one file per track.
func (c *Client) Rip(ctx context.Context, destDir string) error {
	if destDir == "" {
		return errors.New("destination directory required")
	}
	info, err := os.Stat(destDir)
	if err != nil {
		return fmt.Errorf("destination directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %s is not a directory", destDir)
	}

	ripCtx := ctx
	if c.ripTimeout > 0 {
		var cancel context.CancelFunc
		ripCtx, cancel = context.WithTimeout(ctx, c.ripTimeout)
		defer cancel()
	}

	args := []string{"-X", "-B"}
	onOutput := func(line string) {
		c.logger.Debug("ripper output", logging.String("line", line))
	}
	if err := c.exec.Run(ripCtx, destDir, c.binary, args, onOutput); err != nil {
		return fmt.Errorf("cdparanoia rip: %w", err)
	}
	return nil
}

var _ Ripper = (*Client)(nil)

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, dir, binary string, args []string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Dir = dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if onOutput != nil {
				onOutput(scanner.Text())
			}
		}
	}
	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}
