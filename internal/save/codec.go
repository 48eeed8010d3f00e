// Package save encodes the player model to the flat text record and keeps
// that record on disk.
//
// Record layout, one value per line:
//
//	phaseOrdinal
//	name
//	age
//	strength
//	intelligence
//	dexterity
//	stress
//	sanity
//	osirisTrust
//	hasAdminAccess (0/1)
//	relationshipCount, then "<key> <ordinal>" lines
//	secretCount, then one secret per line
//	inventoryCount, then one item per line
//
// Every token is a whitespace-free identifier.
package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/samdwyer/osiris/internal/player"
)

var (
	// ErrNoRecord means there is nothing to decode.
	ErrNoRecord = errors.New("no saved record")
	// ErrCorrupt means the record could not be read back in full.
	ErrCorrupt = errors.New("corrupt saved record")
)

// Encode writes phase and p as a record.
func Encode(w io.Writer, phase player.Phase, p *player.State) error {
	if strings.IndexFunc(p.Name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("encode name %q: %w", p.Name, player.ErrInvalidName)
	}

	bw := bufio.NewWriter(w)
	line := func(v any) {
		fmt.Fprintln(bw, v)
	}

	line(int(phase))
	line(p.Name)
	line(p.Age)
	line(p.Strength)
	line(p.Intelligence)
	line(p.Dexterity)
	line(p.Stress)
	line(p.Sanity)
	line(p.OsirisTrust)
	line(boolToInt(p.HasAdminAccess))

	line(len(p.Relationships))
	for _, r := range p.Relationships {
		if err := player.ValidateToken(r.Who); err != nil {
			return fmt.Errorf("encode relationship %q: %w", r.Who, err)
		}
		fmt.Fprintf(bw, "%s %d\n", r.Who, int(r.Standing))
	}

	if err := writeTokens(bw, "secret", p.Secrets); err != nil {
		return err
	}
	if err := writeTokens(bw, "item", p.Inventory); err != nil {
		return err
	}

	return bw.Flush()
}

// Decode reads a record. On any failure it returns player.Default() along
// with ErrNoRecord or an error wrapping ErrCorrupt, so callers can always
// proceed with the returned state.
func Decode(r io.Reader) (player.Phase, *player.State, error) {
	lines, err := readLines(r)
	if err != nil {
		return fallback(fmt.Errorf("%w: %v", ErrCorrupt, err))
	}
	if len(lines) == 0 {
		return fallback(ErrNoRecord)
	}

	d := &decoder{lines: lines}
	p := &player.State{}

	phase := player.Phase(d.number("phase"))
	p.Name = d.text("name")
	p.Age = d.number("age")
	p.Strength = d.number("strength")
	p.Intelligence = d.number("intelligence")
	p.Dexterity = d.number("dexterity")
	p.Stress = d.number("stress")
	p.Sanity = d.number("sanity")
	p.OsirisTrust = d.number("osirisTrust")
	p.HasAdminAccess = d.flag("hasAdminAccess")

	count := d.count("relationshipCount")
	p.Relationships = make([]player.Relationship, 0, d.capacity(count))
	seen := make(map[string]bool, d.capacity(count))
	for i := 0; i < count && d.err == nil; i++ {
		r := d.relationship()
		if d.err == nil && seen[r.Who] {
			d.err = fmt.Errorf("relationship at line %d: duplicate key %q", d.pos, r.Who)
		}
		seen[r.Who] = true
		p.Relationships = append(p.Relationships, r)
	}

	p.Secrets = d.tokens("secretCount")
	p.Inventory = d.tokens("inventoryCount")

	if d.err == nil {
		d.err = d.trailing()
	}
	if d.err == nil {
		d.err = validate(phase, p)
	}
	if d.err != nil {
		return fallback(fmt.Errorf("%w: %v", ErrCorrupt, d.err))
	}

	p.Phase = phase
	return phase, p, nil
}

func fallback(err error) (player.Phase, *player.State, error) {
	p := player.Default()
	return p.Phase, p, err
}

func validate(phase player.Phase, p *player.State) error {
	switch {
	case !phase.Valid():
		return fmt.Errorf("phase %d out of range", phase)
	case strings.IndexFunc(p.Name, unicode.IsSpace) >= 0:
		return fmt.Errorf("name %q contains whitespace", p.Name)
	case p.Age < 0:
		return fmt.Errorf("age %d is negative", p.Age)
	case p.Strength < 0 || p.Intelligence < 0 || p.Dexterity < 0:
		return errors.New("negative attribute")
	case p.Stress < player.MinPsyche || p.Stress > player.MaxPsyche:
		return fmt.Errorf("stress %d out of range", p.Stress)
	case p.Sanity < player.MinPsyche || p.Sanity > player.MaxPsyche:
		return fmt.Errorf("sanity %d out of range", p.Sanity)
	}
	return nil
}

// decoder walks the record line by line and keeps the first error.
type decoder struct {
	lines []string
	pos   int
	err   error
}

func (d *decoder) next(field string) (string, bool) {
	if d.err != nil {
		return "", false
	}
	if d.pos >= len(d.lines) {
		d.err = fmt.Errorf("missing %s at line %d", field, d.pos+1)
		return "", false
	}
	s := d.lines[d.pos]
	d.pos++
	return s, true
}

func (d *decoder) text(field string) string {
	s, _ := d.next(field)
	return s
}

func (d *decoder) number(field string) int {
	s, ok := d.next(field)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		d.err = fmt.Errorf("%s at line %d: %w", field, d.pos, err)
		return 0
	}
	return v
}

// flag reads a 0/1 boolean.
func (d *decoder) flag(field string) bool {
	n := d.number(field)
	if d.err == nil && n != 0 && n != 1 {
		d.err = fmt.Errorf("%s at line %d: want 0 or 1, got %d", field, d.pos, n)
	}
	return n == 1
}

func (d *decoder) count(field string) int {
	n := d.number(field)
	if d.err == nil && n < 0 {
		d.err = fmt.Errorf("%s at line %d is negative", field, d.pos)
		return 0
	}
	return n
}

// capacity bounds a declared count by the lines actually left.
func (d *decoder) capacity(n int) int {
	return min(n, len(d.lines)-d.pos)
}

func (d *decoder) relationship() player.Relationship {
	s, ok := d.next("relationship")
	if !ok {
		return player.Relationship{}
	}
	fields := strings.Fields(s)
	if len(fields) != 2 {
		d.err = fmt.Errorf("relationship at line %d: want \"<key> <ordinal>\", got %q", d.pos, s)
		return player.Relationship{}
	}
	ordinal, err := strconv.Atoi(fields[1])
	if err != nil {
		d.err = fmt.Errorf("relationship at line %d: %w", d.pos, err)
		return player.Relationship{}
	}
	standing := player.Standing(ordinal)
	if !standing.Valid() {
		d.err = fmt.Errorf("relationship at line %d: ordinal %d out of range", d.pos, ordinal)
		return player.Relationship{}
	}
	return player.Relationship{Who: fields[0], Standing: standing}
}

func (d *decoder) tokens(field string) []string {
	n := d.count(field)
	out := make([]string, 0, d.capacity(n))
	for i := 0; i < n && d.err == nil; i++ {
		s, ok := d.next(field)
		if !ok {
			break
		}
		if err := player.ValidateToken(s); err != nil {
			d.err = fmt.Errorf("%s entry at line %d: %w", field, d.pos, err)
			break
		}
		out = append(out, s)
	}
	return out
}

// trailing rejects anything but blank lines after the inventory.
func (d *decoder) trailing() error {
	for i := d.pos; i < len(d.lines); i++ {
		if strings.TrimSpace(d.lines[i]) != "" {
			return fmt.Errorf("unexpected data at line %d", i+1)
		}
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// A record that is only whitespace counts as empty.
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return lines, nil
		}
	}
	return nil, nil
}

func writeTokens(w io.Writer, kind string, tokens []string) error {
	fmt.Fprintln(w, len(tokens))
	for _, tok := range tokens {
		if err := player.ValidateToken(tok); err != nil {
			return fmt.Errorf("encode %s %q: %w", kind, tok, err)
		}
		fmt.Fprintln(w, tok)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
