package console_test

import (
	"strings"
	"testing"

	"github.com/ConnorNovak/cd-ripper/internal/console"
)

func TestAcknowledgeWaitsForEnter(t *testing.T) {
	var out strings.Builder
	p := console.NewPrompter(strings.NewReader("\n"), &out)

	if err := p.Acknowledge("Load CD 1, then press <Enter>:"); err != nil {
		t.Fatalf("Acknowledge returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Load CD 1") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestConfirmYes(t *testing.T) {
	var out strings.Builder
	p := console.NewPrompter(strings.NewReader("y\n"), &out)

	ok, err := p.Confirm("file exists. Overwrite?")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected yes")
	}
}

func TestConfirmNo(t *testing.T) {
	p := console.NewPrompter(strings.NewReader("N\n"), &strings.Builder{})
	ok, err := p.Confirm("overwrite?")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if ok {
		t.Fatal("expected no")
	}
}

func TestConfirmRepromptsOnInvalidInput(t *testing.T) {
	var out strings.Builder
	p := console.NewPrompter(strings.NewReader("yes\nmaybe\ny\n"), &out)

	ok, err := p.Confirm("overwrite?")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected yes after re-prompts")
	}
	if got := strings.Count(out.String(), "Error: input 'y' or 'N'"); got != 2 {
		t.Fatalf("expected 2 re-prompt errors, got %d (%q)", got, out.String())
	}
}

func TestConfirmClosedInput(t *testing.T) {
	p := console.NewPrompter(strings.NewReader(""), &strings.Builder{})
	if _, err := p.Confirm("overwrite?"); err == nil {
		t.Fatal("expected error when input is closed")
	}
}
