// Package command parses top-level menu input.
package command

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Command is a top-level menu entry.
type Command int

const (
	Continue Command = iota + 1
	Status
	Secrets
	Inventory
	Relationships
	Diagnostics
	Save
	Exit
)

// All lists the menu in display order; the 1-based position is the number
// a player types.
var All = []Command{Continue, Status, Secrets, Inventory, Relationships, Diagnostics, Save, Exit}

var (
	ErrEmpty   = errors.New("empty command")
	ErrUnknown = errors.New("unknown command")
)

type def struct {
	canonical string
	label     string
	aliases   []string
}

var defs = map[Command]def{
	Continue:      {"continue", "Continue story", []string{"c", "story", "next", "play"}},
	Status:        {"status", "View status", []string{"s", "stats", "me"}},
	Secrets:       {"secrets", "View secrets", []string{"secret", "clues"}},
	Inventory:     {"inventory", "View inventory", []string{"i", "inv", "items", "bag"}},
	Relationships: {"relationships", "View relationships", []string{"r", "rel", "people", "trust"}},
	Diagnostics:   {"diagnostics", "View diagnostics", []string{"d", "diag", "debug"}},
	Save:          {"save", "Save progress", []string{"checkpoint"}},
	Exit:          {"exit", "Save and exit", []string{"q", "quit", "bye"}},
}

// String returns the canonical command word.
func (c Command) String() string {
	if d, ok := defs[c]; ok {
		return d.canonical
	}
	return "unknown"
}

// Label returns the menu text for the command.
func (c Command) Label() string {
	if d, ok := defs[c]; ok {
		return d.label
	}
	return "Unknown"
}

// Labels returns the menu text for every command in display order.
func Labels() []string {
	out := make([]string, len(All))
	for i, c := range All {
		out[i] = c.Label()
	}
	return out
}

// Parse resolves a menu number, a command word, or a close misspelling of one.
func Parse(input string) (Command, error) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return 0, ErrEmpty
	}

	if n, err := strconv.Atoi(in); err == nil {
		if n < 1 || n > len(All) {
			return 0, fmt.Errorf("%w: %d is not on the menu", ErrUnknown, n)
		}
		return All[n-1], nil
	}

	type candidate struct {
		cmd  Command
		dist int
	}
	var cands []candidate

	for _, cmd := range All {
		d := defs[cmd]
		for _, word := range append([]string{d.canonical}, d.aliases...) {
			if in == word {
				return cmd, nil
			}
			if len(in) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(in, word)
			if dist <= levenshteinLimit(len(word)) {
				cands = append(cands, candidate{cmd: cmd, dist: dist})
			}
		}
	}

	if len(cands) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknown, input)
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].cmd < cands[j].cmd
		}
		return cands[i].dist < cands[j].dist
	})
	return cands[0].cmd, nil
}

// Index parses input and returns the 1-based menu position.
func Index(input string) (int, error) {
	cmd, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return int(cmd), nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
