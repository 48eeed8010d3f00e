package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette maps a tone name (e.g. "osiris") to a hex color.
type Palette map[string]string

// Colors resolves every entry of the palette to a tcell.Color.
// It fails on the first malformed entry.
func (p Palette) Colors() (map[string]tcell.Color, error) {
	out := make(map[string]tcell.Color, len(p))
	for name, hex := range p {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
		out[name] = c
	}
	return out, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
