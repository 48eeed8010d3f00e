package gamedata

import (
	"errors"
	"fmt"
)

// Roller is the random source used for weighted picks.
type Roller interface {
	RollDice(min, max int) int
}

// Line is one piece of flavor text with a relative pick weight.
type Line struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"` // Relative frequency; 0 is treated as 1
}

func (l Line) weight() int {
	if l.Weight <= 0 {
		return 1
	}
	return l.Weight
}

// NarrativeFile represents the structure of narrative.json.
type NarrativeFile struct {
	Palette       Palette `json:"palette"`
	Visions       []Line  `json:"visions"`       // Hallucinations
	Glitches      []Line  `json:"glitches"`      // High-stress interjections
	Interjections []Line  `json:"interjections"` // Unsolicited OSIRIS remarks
}

// Narrative holds the loaded flavor text pools.
type Narrative struct {
	Palette       Palette
	Visions       *Pool
	Glitches      *Pool
	Interjections *Pool
}

const narrativeFile = "narrative.json"

// LoadNarrative loads the embedded narrative.json.
func LoadNarrative() (*Narrative, error) {
	file, err := Load[NarrativeFile](narrativeFile)
	if err != nil {
		return nil, err
	}
	return NewNarrative(file)
}

// MustLoadNarrative loads narrative data, panicking on error.
func MustLoadNarrative() *Narrative {
	n, err := NewNarrative(MustLoad[NarrativeFile](narrativeFile))
	if err != nil {
		panic(err)
	}
	return n
}

// NewNarrative validates a narrative file and builds its pools.
func NewNarrative(file NarrativeFile) (*Narrative, error) {
	pools := map[string][]Line{
		"visions":       file.Visions,
		"glitches":      file.Glitches,
		"interjections": file.Interjections,
	}
	for name, lines := range pools {
		if len(lines) == 0 {
			return nil, fmt.Errorf("no %s in narrative data", name)
		}
	}
	if _, err := file.Palette.Colors(); err != nil {
		return nil, err
	}

	return &Narrative{
		Palette:       file.Palette,
		Visions:       NewPool(file.Visions),
		Glitches:      NewPool(file.Glitches),
		Interjections: NewPool(file.Interjections),
	}, nil
}

// Pool is a weighted collection of lines.
type Pool struct {
	lines       []Line
	totalWeight int
}

// NewPool creates a pool from lines.
func NewPool(lines []Line) *Pool {
	total := 0
	for _, l := range lines {
		total += l.weight()
	}
	return &Pool{lines: lines, totalWeight: total}
}

// Pick selects a line using weighted probability.
func (p *Pool) Pick(r Roller) (string, error) {
	if len(p.lines) == 0 {
		return "", errors.New("empty pool")
	}

	roll := r.RollDice(0, p.totalWeight-1)

	cumulative := 0
	for _, l := range p.lines {
		cumulative += l.weight()
		if roll < cumulative {
			return l.Text, nil
		}
	}

	return p.lines[0].Text, nil
}

// All returns every line text in file order.
func (p *Pool) All() []string {
	out := make([]string, len(p.lines))
	for i, l := range p.lines {
		out[i] = l.Text
	}
	return out
}

// Count returns the number of lines in the pool.
func (p *Pool) Count() int {
	return len(p.lines)
}
