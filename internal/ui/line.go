package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// LineConsole is a plain stdio console without colors, for pipes and tests.
type LineConsole struct {
	in        *bufio.Scanner
	out       io.Writer
	charDelay time.Duration
}

// NewLineConsole creates a console reading lines from r and writing to w.
func NewLineConsole(r io.Reader, w io.Writer, charDelay time.Duration) *LineConsole {
	return &LineConsole{
		in:        bufio.NewScanner(r),
		out:       w,
		charDelay: charDelay,
	}
}

// Say writes a line, prefixing OSIRIS lines so they stand out without color.
func (c *LineConsole) Say(tone Tone, text string) {
	if tone == ToneOsiris {
		text = "OSIRIS: " + text
	}
	if c.charDelay <= 0 {
		fmt.Fprintln(c.out, text)
		return
	}
	for _, r := range text {
		fmt.Fprint(c.out, string(r))
		time.Sleep(c.charDelay)
	}
	fmt.Fprintln(c.out)
}

// Prompt writes question and reads one line. It returns io.EOF when input ends.
func (c *LineConsole) Prompt(question string) (string, error) {
	fmt.Fprint(c.out, question+" ")
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Pause blocks for d.
func (c *LineConsole) Pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
