package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line-oriented answers from the user. The interactive
// menu is single-threaded by design; a plain buffered reader is
// enough.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter builds a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the label and returns the next trimmed input line.
// io.EOF propagates so callers can exit cleanly on a closed stdin.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, FormatPrompt(label))
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Say prints a line of output.
func (p *Prompter) Say(text string) {
	fmt.Fprintln(p.out, text)
}
