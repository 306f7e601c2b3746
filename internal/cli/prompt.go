package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompt asks yes/no questions on the terminal. Only an explicit yes counts.
type prompt struct {
	r   *bufio.Reader
	out io.Writer
}

func newPrompt(in io.Reader, out io.Writer) *prompt {
	return &prompt{r: bufio.NewReader(in), out: out}
}

func (p *prompt) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [t/N]: ", question)

	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "t", "tak", "y", "yes":
		return true
	}
	return false
}
