package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/osiris/internal/gamedata"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, []string{""}},
		{"short", 10, []string{"short"}},
		{"the lab is quiet", 8, []string{"the lab", "is quiet"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"one\ntwo", 10, []string{"one", "two"}},
	}

	for _, tt := range tests {
		got := wrap(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}

	if got := wrap("anything", 0); got != nil {
		t.Errorf("wrap with zero width = %q, want nil", got)
	}
}

func TestLineConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader("  42 \nhello\n"), &out, 0)

	c.Say(ToneNarration, "The lab is quiet.")
	c.Say(ToneOsiris, "Why did you abandon me?")

	got, err := c.Prompt("Choose:")
	if err != nil || got != "42" {
		t.Fatalf("Prompt = %q, %v; want \"42\", nil", got, err)
	}
	got, err = c.Prompt("You:")
	if err != nil || got != "hello" {
		t.Fatalf("Prompt = %q, %v; want \"hello\", nil", got, err)
	}
	if _, err := c.Prompt("Again:"); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF at end of input, got %v", err)
	}

	transcript := out.String()
	for _, want := range []string{"The lab is quiet.\n", "OSIRIS: Why did you abandon me?\n", "Choose: "} {
		if !strings.Contains(transcript, want) {
			t.Errorf("Transcript missing %q:\n%s", want, transcript)
		}
	}
}

func TestNewStyles(t *testing.T) {
	styles, err := NewStyles(gamedata.Palette{"osiris": "#D75FD7"})
	if err != nil {
		t.Fatalf("NewStyles failed: %v", err)
	}

	want, err := gamedata.ParseHexColor("#D75FD7")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	fg, _, attrs := styles.Style(ToneOsiris).Decompose()
	if fg != want {
		t.Errorf("Unexpected osiris color %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected osiris tone to be bold")
	}

	if _, err := NewStyles(gamedata.Palette{"osiris": "nope"}); err == nil {
		t.Error("Expected error for malformed palette")
	}
}
