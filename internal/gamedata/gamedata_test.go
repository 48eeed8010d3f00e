package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"
)

// rngRoller adapts *rand.Rand to Roller for tests.
type rngRoller struct{ rng *rand.Rand }

func (r rngRoller) RollDice(min, max int) int { return min + r.rng.Intn(max-min+1) }

// fixedRoller always returns the same roll.
type fixedRoller int

func (f fixedRoller) RollDice(min, max int) int { return int(f) }

func TestLoadNarrative(t *testing.T) {
	n, err := LoadNarrative()
	if err != nil {
		t.Fatalf("Failed to load narrative: %v", err)
	}

	if n.Visions.Count() != 8 {
		t.Errorf("Expected 8 visions, got %d", n.Visions.Count())
	}
	if n.Glitches.Count() == 0 || n.Interjections.Count() == 0 {
		t.Error("Expected glitch and interjection lines")
	}

	for _, tone := range []string{"narration", "osiris", "danger", "calm", "prompt", "system", "glitch"} {
		if _, ok := n.Palette[tone]; !ok {
			t.Errorf("Palette missing tone %q", tone)
		}
	}
}

func TestPoolPickIsDeterministic(t *testing.T) {
	n := MustLoadNarrative()

	r1 := rngRoller{rand.New(rand.NewSource(12345))}
	r2 := rngRoller{rand.New(rand.NewSource(12345))}

	for i := 0; i < 10; i++ {
		a, err := n.Visions.Pick(r1)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		b, _ := n.Visions.Pick(r2)
		if a != b {
			t.Errorf("Pick %d mismatch: %q != %q", i, a, b)
		}
	}
}

func TestPoolPickRespectsWeights(t *testing.T) {
	pool := NewPool([]Line{
		{Text: "heavy", Weight: 3},
		{Text: "light", Weight: 1},
		{Text: "unweighted"},
	})

	tests := []struct {
		roll int
		want string
	}{
		{0, "heavy"},
		{2, "heavy"},
		{3, "light"},
		{4, "unweighted"},
	}

	for _, tt := range tests {
		got, err := pool.Pick(fixedRoller(tt.roll))
		if err != nil {
			t.Fatalf("Pick(%d) failed: %v", tt.roll, err)
		}
		if got != tt.want {
			t.Errorf("Pick(%d) = %q, want %q", tt.roll, got, tt.want)
		}
	}
}

func TestEmptyPool(t *testing.T) {
	if _, err := NewPool(nil).Pick(fixedRoller(0)); err == nil {
		t.Error("Expected error picking from empty pool")
	}
}

func TestNewNarrativeRejectsMissingPools(t *testing.T) {
	_, err := NewNarrative(NarrativeFile{Visions: []Line{{Text: "x"}}})
	if err == nil {
		t.Error("Expected error for missing glitches and interjections")
	}
}

func TestLoadFSErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": {Data: []byte("{not json")},
	}

	if _, err := LoadFS[NarrativeFile](fsys, "missing.json"); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := LoadFS[NarrativeFile](fsys, "broken.json"); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestMustLoadPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustLoad to panic for a missing file")
		}
	}()
	MustLoad[NarrativeFile]("missing.json")
}

func TestMustLoadNarrativeFile(t *testing.T) {
	file := MustLoad[NarrativeFile](narrativeFile)
	if len(file.Visions) == 0 {
		t.Error("Expected embedded visions")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestPaletteColors(t *testing.T) {
	colors, err := Palette{"osiris": "#D75FD7"}.Colors()
	if err != nil {
		t.Fatalf("Colors failed: %v", err)
	}
	if colors["osiris"] == 0 {
		t.Error("Expected non-zero color")
	}

	if _, err := (Palette{"bad": "#12"}).Colors(); err == nil {
		t.Error("Expected error for malformed palette entry")
	}
}
