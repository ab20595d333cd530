// Package console holds the two interactive prompts the tool uses:
// waiting for the operator to load a disc, and confirming a destructive
// overwrite. Both are injected into the components that need them so core
// logic stays testable without a terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AcknowledgeFunc blocks until the operator signals readiness.
type AcknowledgeFunc func(message string) error

// ConfirmFunc asks a yes/no question and reports the answer.
type ConfirmFunc func(message string) (bool, error)

// Prompter reads operator input line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter over the given streams, typically
// os.Stdin and os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Acknowledge prints the message and blocks until the operator presses
// Enter.
func (p *Prompter) Acknowledge(message string) error {
	fmt.Fprint(p.out, message)
	_, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read confirmation: %w", err)
	}
	return nil
}

// Confirm prints the message with a [y/N] suffix and reads the answer.
// Exactly "y" answers yes and exactly "N" answers no; anything else
// re-solicits.
func (p *Prompter) Confirm(message string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/N]: ", message)
		line, err := p.in.ReadString('\n')
		if err != nil {
			if err == io.EOF && strings.TrimRight(line, "\r\n") == "" {
				return false, fmt.Errorf("read confirmation: input closed")
			}
			if err != io.EOF {
				return false, fmt.Errorf("read confirmation: %w", err)
			}
		}
		switch strings.TrimRight(line, "\r\n") {
		case "y":
			return true, nil
		case "N":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Error: input 'y' or 'N'")
			if err == io.EOF {
				return false, fmt.Errorf("read confirmation: input closed")
			}
		}
	}
}
