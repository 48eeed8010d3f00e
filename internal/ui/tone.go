package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/osiris/internal/gamedata"
)

// Tone selects how a line of text is presented.
type Tone int

const (
	ToneNarration Tone = iota
	ToneOsiris
	ToneDanger
	ToneCalm
	TonePrompt
	ToneSystem
	ToneGlitch
)

// String returns the palette key for the tone.
func (t Tone) String() string {
	switch t {
	case ToneNarration:
		return "narration"
	case ToneOsiris:
		return "osiris"
	case ToneDanger:
		return "danger"
	case ToneCalm:
		return "calm"
	case TonePrompt:
		return "prompt"
	case ToneSystem:
		return "system"
	case ToneGlitch:
		return "glitch"
	default:
		return "unknown"
	}
}

var tones = []Tone{ToneNarration, ToneOsiris, ToneDanger, ToneCalm, TonePrompt, ToneSystem, ToneGlitch}

// Styles maps tones to tcell styles.
type Styles map[Tone]tcell.Style

// NewStyles builds styles from a palette. Tones missing from the palette
// use the default style.
func NewStyles(p gamedata.Palette) (Styles, error) {
	colors, err := p.Colors()
	if err != nil {
		return nil, err
	}

	styles := make(Styles, len(tones))
	for _, t := range tones {
		style := tcell.StyleDefault
		if c, ok := colors[t.String()]; ok {
			style = style.Foreground(c)
		}
		switch t {
		case ToneOsiris, TonePrompt:
			style = style.Bold(true)
		case ToneGlitch:
			style = style.Reverse(true)
		}
		styles[t] = style
	}
	return styles, nil
}

// Style returns the style for t.
func (s Styles) Style(t Tone) tcell.Style {
	if style, ok := s[t]; ok {
		return style
	}
	return tcell.StyleDefault
}
