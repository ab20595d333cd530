package mid3v2

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Tags holds the tag fields mid3v2 can write. Empty strings (and a zero
// Track) mean "leave this field alone".
type Tags struct {
	Artist string
	Album  string
	Title  string
	Genre  string
	Date   string
	Track  int
}

// Empty reports whether no field is set.
func (t Tags) Empty() bool {
	return t.Artist == "" && t.Album == "" && t.Title == "" &&
		t.Genre == "" && t.Date == "" && t.Track == 0
}

// Tagger defines the behaviour required by the album pipeline.
type Tagger interface {
	Apply(ctx context.Context, path string, tags Tags) error
	Show(ctx context.Context, path string) (string, error)
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (string, error)
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

// Client wraps mid3v2 CLI interactions.
type Client struct {
	binary string
	exec   Executor
}

// New constructs a mid3v2 client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("mid3v2 binary required")
	}
	client := &Client{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Apply writes the provided tag fields to the file, leaving unset fields
// unmodified.
func (c *Client) Apply(ctx context.Context, path string, tags Tags) error {
	if err := checkFile(path); err != nil {
		return err
	}
	if tags.Empty() {
		return nil
	}

	args := make([]string, 0, 13)
	if tags.Artist != "" {
		args = append(args, "-a", tags.Artist)
	}
	if tags.Album != "" {
		args = append(args, "-A", tags.Album)
	}
	if tags.Title != "" {
		args = append(args, "-t", tags.Title)
	}
	if tags.Genre != "" {
		args = append(args, "-g", tags.Genre)
	}
	if tags.Date != "" {
		args = append(args, "-y", tags.Date)
	}
	if tags.Track != 0 {
		args = append(args, "-T", strconv.Itoa(tags.Track))
	}
	args = append(args, path)

	if _, err := c.exec.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("mid3v2 apply: %w", err)
	}
	return nil
}

// Show returns the current tag contents of the file as reported by
// mid3v2 -l.
func (c *Client) Show(ctx context.Context, path string) (string, error) {
	if err := checkFile(path); err != nil {
		return "", err
	}
	output, err := c.exec.Run(ctx, c.binary, []string{"-l", path})
	if err != nil {
		return "", fmt.Errorf("mid3v2 show: %w", err)
	}
	return output, nil
}

func checkFile(path string) error {
	if path == "" {
		return errors.New("file path required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("tag target: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("tag target %s is a directory", path)
	}
	return nil
}

var _ Tagger = (*Client)(nil)

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(output))
		if trimmed != "" {
			return "", fmt.Errorf("command failed: %w: %s", err, trimmed)
		}
		return "", fmt.Errorf("command failed: %w", err)
	}
	return string(output), nil
}
