package game

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/ui"
)

// displayName turns an identifier like "dr_reyes" into "Dr Reyes".
func displayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

func (g *Game) showStatus() {
	p := g.player
	g.say(ui.ToneNarration, fmt.Sprintf("=== Dr. %s, age %d ===", p.Name, p.Age))
	g.say(ui.ToneSystem, fmt.Sprintf("Strength %d | Intelligence %d | Dexterity %d", p.Strength, p.Intelligence, p.Dexterity))
	g.say(g.psycheTone(), fmt.Sprintf("Stress %d/100 | Sanity %d/100", p.Stress, p.Sanity))
	g.say(ui.ToneOsiris, fmt.Sprintf("OSIRIS trust: %d", p.OsirisTrust))
	access := "denied"
	if p.HasAdminAccess {
		access = "granted"
	}
	g.say(ui.ToneSystem, fmt.Sprintf("Admin access: %s | Chapter: %s", access, displayName(p.Phase.String())))
}

func (g *Game) showSecrets() {
	if len(g.player.Secrets) == 0 {
		g.say(ui.ToneSystem, "No secrets discovered.")
		return
	}
	g.say(ui.ToneNarration, "=== Discovered secrets ===")
	for i, s := range g.player.Secrets {
		g.say(ui.ToneSystem, fmt.Sprintf("%d. %s", i+1, displayName(s)))
	}
}

func (g *Game) showInventory() {
	if len(g.player.Inventory) == 0 {
		g.say(ui.ToneSystem, "Your pockets are empty.")
		return
	}
	g.say(ui.ToneNarration, "=== Inventory ===")
	for _, item := range g.player.Inventory {
		g.say(ui.ToneSystem, "- "+displayName(item))
	}
}

func (g *Game) showRelationships() {
	g.say(ui.ToneNarration, "=== Relationships ===")
	for _, r := range g.player.Relationships {
		g.say(ui.ToneSystem, fmt.Sprintf("%-16s %s", displayName(r.Who), r.Standing))
	}
}

func (g *Game) showDiagnostics() {
	s := g.session
	g.say(ui.ToneNarration, "=== Diagnostics ===")
	g.say(ui.ToneSystem, fmt.Sprintf("Session %s | seed %d", s.ID, s.Dice.Seed()))
	g.say(ui.ToneSystem, fmt.Sprintf("Phase %s | record %s", g.player.Phase, g.store.Path()))

	loop := "inactive"
	if s.TimeLoopActive {
		loop = fmt.Sprintf("ACTIVE (iteration %d)", s.LoopCount)
	}
	g.say(ui.ToneSystem, "Time loop: "+loop)

	visions := s.Hallucinations()
	if len(visions) == 0 {
		g.say(ui.ToneSystem, "Active hallucinations: none")
		return
	}
	g.say(ui.ToneDanger, fmt.Sprintf("Active hallucinations: %d", len(visions)))
	for _, v := range visions {
		g.say(ui.ToneDanger, "  "+v)
	}
}

// psycheTone colors the stress/sanity line by severity.
func (g *Game) psycheTone() ui.Tone {
	if g.player.Stress >= player.StressElevatedAt || g.player.Sanity < player.SanityShakenAt {
		return ui.ToneDanger
	}
	return ui.ToneCalm
}
