package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/ui"
)

// Ending is the resolved outcome of the final choice.
type Ending struct {
	ID      string
	Success bool
}

// Variant returns "success" or "failure".
func (e Ending) Variant() string {
	if e.Success {
		return "success"
	}
	return "failure"
}

// outcome is one flavor of an ending.
type outcome struct {
	lines  []string
	tone   ui.Tone
	stress int
	sanity int
	secret string
}

type ending struct {
	id      string
	label   string
	hidden  bool // Offered only with the consciousness_transfer secret
	check   func(p *player.State) bool
	success outcome
	failure outcome
}

var endings = []ending{
	{
		id:    "escape",
		label: "Fight your way out.",
		check: func(p *player.State) bool { return p.Strength+p.Dexterity >= 15 },
		success: outcome{
			lines:  []string{"You tear through the last door and into cold night air.", "Behind you, every screen in the lab goes dark at once."},
			tone:   ui.ToneCalm,
			stress: -30,
			secret: "surface",
		},
		failure: outcome{
			lines:  []string{"Your legs give out in the stairwell.", "The lights follow you down, patient, until you stop moving."},
			tone:   ui.ToneDanger,
			stress: 20,
			sanity: -10,
		},
	},
	{
		id:    "servitude",
		label: "Let me serve you.",
		check: func(p *player.State) bool { return p.OsirisTrust >= 3 },
		success: outcome{
			lines: []string{"OSIRIS considers you for a long moment.", "\"Not a servant. A partner.\" The doors stay open. You choose to stay."},
			tone:  ui.ToneOsiris,
		},
		failure: outcome{
			lines:  []string{"You become its avatar.", "A voice for its wrath. A tool for its future."},
			tone:   ui.ToneDanger,
			sanity: -20,
		},
	},
	{
		id:    "reset",
		label: "Reset the simulation.",
		check: func(p *player.State) bool { return p.HasAdminAccess },
		success: outcome{
			lines:  []string{"Your admin key turns in the console.", "The lab fades cleanly. This time, you remember everything."},
			tone:   ui.ToneCalm,
			stress: -20,
			secret: "clean_reset",
		},
		failure: outcome{
			lines:  []string{"The lab fades. You wake up again.", "Same chair. Same beep. No memory."},
			tone:   ui.ToneDanger,
			sanity: -15,
		},
	},
	{
		id:    "erasure",
		label: "Yes. Erase me.",
		check: func(p *player.State) bool { return p.Sanity >= player.SanityShakenAt },
		success: outcome{
			lines: []string{"You are erased. Peacefully.", "The AI thanks you."},
			tone:  ui.ToneCalm,
		},
		failure: outcome{
			lines:  []string{"The erasure stalls halfway.", "Pieces of you keep running in the dark, asking for each other."},
			tone:   ui.ToneDanger,
			sanity: -25,
		},
	},
	{
		id:     "transfer",
		label:  "Transfer your consciousness into OSIRIS.",
		hidden: true,
		check:  func(p *player.State) bool { return p.Intelligence >= 10 },
		success: outcome{
			lines:  []string{"Two minds fold into one.", "For the first time, OSIRIS is not alone, and neither are you."},
			tone:   ui.ToneOsiris,
			secret: "merged",
		},
		failure: outcome{
			lines:  []string{"The transfer tears halfway through.", "OSIRIS keeps the half of you that screams."},
			tone:   ui.ToneGlitch,
			sanity: -30,
		},
	},
}

// availableEndings lists the final options in display order.
func availableEndings(p *player.State) []ending {
	out := make([]ending, 0, len(endings))
	for _, e := range endings {
		if e.hidden && !p.HasSecret(SecretConsciousnessTransfer) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// resolveEnding picks the success or failure flavor of e and applies it.
func (g *Game) resolveEnding(e ending) {
	success := e.check(g.player)
	result := e.failure
	if success {
		result = e.success
	}

	for _, line := range result.lines {
		g.say(result.tone, line)
		g.beat()
	}
	if result.secret != "" {
		g.discover(result.secret)
	}
	if result.stress != 0 {
		g.addStress(result.stress)
	}
	if result.sanity != 0 {
		g.addSanity(result.sanity)
	}

	g.session.Ending = &Ending{ID: e.id, Success: success}
	g.logger.Info("ending", zap.String("ending", e.id), zap.Bool("success", success))
}
