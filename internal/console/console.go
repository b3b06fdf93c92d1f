// Package console provides the line-based read/print collaborator used by
// the menu and the round state machine.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is a minimal line-oriented terminal.
type Console interface {
	// Prompt writes prompt without a newline and reads one line of input,
	// returning it with surrounding whitespace removed.
	Prompt(prompt string) (string, error)
	// Println writes its operands followed by a newline.
	Println(a ...any)
	// Printf writes formatted output.
	Printf(format string, a ...any)
}

// Terminal is a Console backed by an io.Reader and io.Writer.
type Terminal struct {
	r *bufio.Reader
	w io.Writer
}

// New wraps r and w as a Terminal.
func New(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{r: bufio.NewReader(r), w: w}
}

// Prompt implements Console. A final line without a trailing newline is
// still returned; io.EOF is only reported once no input is left.
func (t *Terminal) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(t.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := t.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Println implements Console.
func (t *Terminal) Println(a ...any) { _, _ = fmt.Fprintln(t.w, a...) }

// Printf implements Console.
func (t *Terminal) Printf(format string, a ...any) { _, _ = fmt.Fprintf(t.w, format, a...) }
