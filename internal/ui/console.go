package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by Prompt when the player quits the console.
var ErrClosed = errors.New("console closed")

// maxTranscript bounds how many lines the console remembers.
const maxTranscript = 500

type entry struct {
	tone Tone
	text string
}

// Console is a full-screen terminal: a scrolling transcript above a single
// input line. Text is revealed one rune at a time.
type Console struct {
	screen     *Screen
	styles     Styles
	charDelay  time.Duration
	transcript []entry
}

// NewConsole creates a console drawing to screen.
func NewConsole(screen *Screen, styles Styles, charDelay time.Duration) *Console {
	return &Console{
		screen:    screen,
		styles:    styles,
		charDelay: charDelay,
	}
}

// Say appends a line to the transcript with a typewriter effect.
func (c *Console) Say(tone Tone, text string) {
	c.push(entry{tone: tone})
	last := &c.transcript[len(c.transcript)-1]

	if c.charDelay <= 0 {
		last.text = text
		c.render("", nil)
		return
	}

	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		last.text = b.String()
		c.render("", nil)
		time.Sleep(c.charDelay)
	}
}

// Prompt shows question on the input line and returns the submitted text.
// Escape and Ctrl-C return ErrClosed.
func (c *Console) Prompt(question string) (string, error) {
	var input []rune
	c.render(question, input)

	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return "", ErrClosed
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrClosed
			case tcell.KeyEnter:
				answer := string(input)
				c.push(entry{tone: ToneSystem, text: question + " " + answer})
				c.render("", nil)
				return answer, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		}
		c.render(question, input)
	}
}

// Pause blocks for d.
func (c *Console) Pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Close restores the terminal.
func (c *Console) Close() {
	c.screen.Close()
}

func (c *Console) push(e entry) {
	c.transcript = append(c.transcript, e)
	if len(c.transcript) > maxTranscript {
		c.transcript = c.transcript[len(c.transcript)-maxTranscript:]
	}
}

// render draws the tail of the transcript and the input line.
func (c *Console) render(question string, input []rune) {
	c.screen.Clear()
	width, height := c.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	type row struct {
		tone Tone
		text string
	}
	rows := make([]row, 0, height)
	available := height - 1

	// Walk the transcript backwards until the screen is full.
	for i := len(c.transcript) - 1; i >= 0 && len(rows) < available; i-- {
		wrapped := wrap(c.transcript[i].text, width)
		for j := len(wrapped) - 1; j >= 0 && len(rows) < available; j-- {
			rows = append(rows, row{tone: c.transcript[i].tone, text: wrapped[j]})
		}
	}

	y := available - 1
	for _, r := range rows {
		c.screen.DrawText(0, y, r.text, c.styles.Style(r.tone))
		y--
	}

	if question != "" {
		x := c.screen.DrawText(0, height-1, question+" ", c.styles.Style(TonePrompt))
		x = c.screen.DrawText(x, height-1, string(input), tcell.StyleDefault)
		c.screen.ShowCursor(x, height-1)
	}
	c.screen.Show()
}

// wrap breaks text into rows no wider than width, preferring word boundaries.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	if text == "" {
		return []string{""}
	}

	var rows []string
	for _, para := range strings.Split(text, "\n") {
		var line []rune
		for _, word := range strings.Fields(para) {
			w := []rune(word)
			for len(w) > width {
				if len(line) > 0 {
					rows = append(rows, string(line))
					line = nil
				}
				rows = append(rows, string(w[:width]))
				w = w[width:]
			}
			switch {
			case len(line) == 0:
				line = append(line, w...)
			case len(line)+1+len(w) <= width:
				line = append(line, ' ')
				line = append(line, w...)
			default:
				rows = append(rows, string(line))
				line = append([]rune(nil), w...)
			}
		}
		rows = append(rows, string(line))
	}
	return rows
}
