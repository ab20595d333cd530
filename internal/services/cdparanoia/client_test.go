package cdparanoia_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ConnorNovak/cd-ripper/internal/services/cdparanoia"
)

type fakeExecutor struct {
	dir    string
	binary string
	args   []string
	err    error
}

func (f *fakeExecutor) Run(ctx context.Context, dir, binary string, args []string, onOutput func(string)) error {
	f.dir = dir
	f.binary = binary
	f.args = append([]string(nil), args...)
	return f.err
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := cdparanoia.New("  ", 0); err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestRipRunsBatchModeInDestDir(t *testing.T) {
	exec := &fakeExecutor{}
	client, err := cdparanoia.New("cdparanoia", 0, cdparanoia.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	dest := t.TempDir()
	if err := client.Rip(context.Background(), dest); err != nil {
		t.Fatalf("Rip returned error: %v", err)
	}
	if exec.dir != dest {
		t.Fatalf("command dir = %q, want %q", exec.dir, dest)
	}
	if exec.binary != "cdparanoia" {
		t.Fatalf("unexpected binary: %q", exec.binary)
	}
	if len(exec.args) != 2 || exec.args[0] != "-X" || exec.args[1] != "-B" {
		t.Fatalf("unexpected args: %v", exec.args)
	}
}

func TestRipMissingDestDir(t *testing.T) {
	client, err := cdparanoia.New("cdparanoia", 0, cdparanoia.WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := client.Rip(context.Background(), "/nonexistent/scratch"); err == nil {
		t.Fatal("expected error for missing destination")
	}
}

func TestRipPropagatesCommandFailure(t *testing.T) {
	cause := errors.New("exit status 1")
	client, err := cdparanoia.New("cdparanoia", 0, cdparanoia.WithExecutor(&fakeExecutor{err: cause}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	err = client.Rip(context.Background(), t.TempDir())
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped command failure, got %v", err)
	}
}
