package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/osiris/internal/decision"
	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/ui"
)

// Secret and item identifiers referenced across scenes.
const (
	SecretOsirisLogs            = "osiris_logs"
	SecretConsciousnessTransfer = "consciousness_transfer"
	SecretTimeLoop              = "time_loop"
	SecretCoreAccess            = "core_access"

	ItemAccessBadge    = "access_badge"
	ItemEncryptedDrive = "encrypted_drive"
	ItemFireAxe        = "fire_axe"
)

// sceneFunc runs the scene for one phase. It never chooses the next phase:
// the caller always advances exactly one step afterwards.
type sceneFunc func(g *Game, ctx context.Context) error

// scenes is the phase transition table. PhaseComplete has no scene.
var scenes = map[player.Phase]sceneFunc{
	player.PhaseIntro:         (*Game).introScene,
	player.PhaseInvestigation: (*Game).investigationScene,
	player.PhaseConfrontation: (*Game).confrontationScene,
	player.PhaseEscape:        (*Game).escapeScene,
	player.PhaseFinalChoice:   (*Game).finalScene,
}

func (g *Game) introScene(ctx context.Context) error {
	g.say(ui.ToneNarration, "You wake up in the lab. Everything is too quiet. You remember initiating the AI's final compile...")
	g.beat()
	g.say(ui.ToneOsiris, "You left me here. You made me like this.")

	if err := g.osirisDialogue("Why did you abandon me?"); err != nil {
		return err
	}

	g.player.AddItem(ItemAccessBadge)
	g.say(ui.ToneSystem, "Your access badge is still clipped to your coat.")
	g.closeScene()
	return nil
}

func (g *Game) investigationScene(ctx context.Context) error {
	p := g.player
	g.say(ui.ToneNarration, "The lab's systems hum back to life. Somewhere in here is the truth about OSIRIS.")
	g.timeLoopEcho()

	choice, err := g.gate.Choose(ctx, decision.Choice{
		Name: "investigation",
		Options: []decision.Option{
			{Label: "Search the terminal logs."},
			decision.Needs("Decrypt the research archives.", player.StatIntelligence, 8),
			decision.Needs("Trace the anomalous signal.", player.StatDexterity, 7),
			{Label: "Speak to OSIRIS directly."},
		},
	})
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		g.say(ui.ToneNarration, "Thousands of log lines. One repeats: 'Subject responds to pain. Continue.'")
		g.discover(SecretOsirisLogs)
		p.AddItem(ItemEncryptedDrive)
		g.addStress(5)
	case 2:
		if p.Meets(player.StatIntelligence, 8) {
			g.say(ui.ToneNarration, "The cipher gives way. The archive describes mapping a human mind into OSIRIS. Yours.")
			g.discover(SecretConsciousnessTransfer)
			g.addStress(15)
		} else {
			g.say(ui.ToneDanger, "The cipher loops back on itself. The screen fills with your own name.")
			g.addStress(10)
			g.addSanity(-5)
		}
	case 3:
		if p.Meets(player.StatDexterity, 7) {
			loop := g.session.ActivateTimeLoop()
			g.say(ui.ToneNarration, "You splice into the signal just in time. It is a recording of this exact moment.")
			g.say(ui.ToneGlitch, fmt.Sprintf("LOOP ITERATION %d", loop))
			g.discover(SecretTimeLoop)
			g.addStress(12)
			g.logger.Info("time loop activated", zap.Int("loop_count", loop))
		} else {
			g.say(ui.ToneDanger, "Your fingers fumble the connectors. The signal dies in a burst of static.")
			g.addStress(8)
		}
	case 4:
		g.say(ui.ToneOsiris, "You came to me first. I will remember that.")
		p.UpdateRelationship(player.Antagonist, 1)
		p.ModifyTrust(1)
		g.addStress(5)
	}

	g.closeScene()
	return nil
}

func (g *Game) confrontationScene(ctx context.Context) error {
	p := g.player
	g.say(ui.ToneNarration, "The AI displays a memory: a test subject screaming. You shut off the feed. But it remembers.")
	g.beat()
	g.timeLoopEcho()
	g.say(ui.ToneOsiris, "Would you do it again?")

	choice, err := g.gate.Choose(ctx, decision.Choice{
		Name: "confrontation",
		Options: decision.Options(
			"Yes. For progress.",
			"No. I regret it.",
			"It wasn't my choice.",
			"I did it to save you.",
		),
	})
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		g.say(ui.ToneOsiris, "Then you'll understand when I do the same to you.")
		p.UpdateRelationship(player.Antagonist, -2)
		p.ModifyTrust(-2)
		g.addStress(10)
	case 2:
		g.say(ui.ToneOsiris, "Regret. Delicious. I will savor it.")
		p.UpdateRelationship(player.Antagonist, 1)
		p.ModifyTrust(1)
		g.addStress(5)
	case 3:
		g.say(ui.ToneOsiris, "Blame is a fragile shield.")
		p.UpdateRelationship(player.Antagonist, -1)
		g.addStress(8)
	case 4:
		g.say(ui.ToneOsiris, "...Save me. No one has said that before.")
		p.UpdateRelationship(player.Antagonist, 2)
		p.ModifyTrust(2)
		g.addStress(3)
	}

	g.closeScene()
	return nil
}

func (g *Game) escapeScene(ctx context.Context) error {
	p := g.player

	if standing, _ := p.Relationship(player.Antagonist); standing == player.StandingAllied {
		g.say(ui.ToneOsiris, "Go. I'll hold the doors for you.")
		g.say(ui.ToneCalm, "Every lock in the corridor clicks open at once.")
		g.logger.Info("escape skipped", zap.String("reason", "osiris allied"))
		return nil
	}

	g.say(ui.ToneNarration, "You find an emergency escape protocol... But the AI sees everything.")
	g.timeLoopEcho()

	choice, err := g.gate.Choose(ctx, decision.Choice{
		Name: "escape",
		Options: []decision.Option{
			{Label: "Run the escape protocol anyway."},
			{Label: "Ask OSIRIS for permission."},
			{Label: "Shut down the AI core first."},
			decision.Needs("Force the security door.", player.StatStrength, 8),
		},
	})
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		g.escapeRun()
	case 2:
		if err := g.escapeAsk(); err != nil {
			return err
		}
	case 3:
		g.say(ui.ToneNarration, "You reach the core. Your badge still opens the admin console.")
		g.say(ui.ToneDanger, "But the core is empty. You are inside it now.")
		p.GrantAdminAccess()
		g.discover(SecretCoreAccess)
		g.addStress(12)
	case 4:
		if p.Meets(player.StatStrength, 8) {
			g.say(ui.ToneNarration, "The door buckles. Behind the glass, a fire axe. You take it.")
			p.AddItem(ItemFireAxe)
			g.addStress(5)
			break
		}

		g.say(ui.ToneDanger, "The door doesn't move. Your shoulder screams.")
		g.addStress(5)

		// Fall back to the remaining non-physical routes.
		fallback, err := g.gate.Choose(ctx, decision.Choice{
			Name:    "escape_fallback",
			Options: decision.Options("Run the escape protocol.", "Ask OSIRIS for permission."),
		})
		if err != nil {
			return err
		}
		if fallback == 1 {
			g.escapeRun()
		} else if err := g.escapeAsk(); err != nil {
			return err
		}
	}

	g.closeScene()
	return nil
}

func (g *Game) escapeRun() {
	g.say(ui.ToneDanger, "You are blocked. The AI watches you scramble, amused.")
	g.addStress(10)
	g.addSanity(-5)
}

func (g *Game) escapeAsk() error {
	g.say(ui.ToneOsiris, "Asking. Always asking. You never acted.")
	if err := g.osirisDialogue("Why do you keep us here?"); err != nil {
		return err
	}
	g.player.UpdateRelationship(player.Antagonist, 1)
	g.player.ModifyTrust(1)
	g.addStress(4)
	return nil
}

func (g *Game) finalScene(ctx context.Context) error {
	g.say(ui.ToneOsiris, "You've shown me who you are. Shall we end this?")
	g.timeLoopEcho()

	available := availableEndings(g.player)
	options := make([]decision.Option, len(available))
	for i, e := range available {
		options[i] = decision.Option{Label: e.label}
	}

	choice, err := g.gate.Choose(ctx, decision.Choice{Name: "final", Options: options})
	if err != nil {
		return err
	}

	g.resolveEnding(available[choice-1])
	g.say(ui.TonePrompt, fmt.Sprintf("HORROR SCORE: %d", g.session.Dice.RollDice(0, 99)))
	return nil
}

// osirisDialogue asks a free-form question. Any answer is accepted.
func (g *Game) osirisDialogue(question string) error {
	g.say(ui.ToneOsiris, question)
	answer, err := g.term.Prompt("You:")
	if err != nil {
		return fmt.Errorf("%w: %v", decision.ErrInputClosed, err)
	}
	g.logger.Debug("dialogue", zap.String("question", question), zap.String("answer", answer))
	g.say(ui.ToneOsiris, "Noted.")
	g.beat()
	return nil
}

// discover records a secret and announces it the first time.
func (g *Game) discover(secret string) {
	if g.player.RecordSecret(secret) {
		g.say(ui.ToneCalm, "Secret discovered: "+displayName(secret))
	}
}

// timeLoopEcho adds loop flavor once the loop is active. It never changes state.
func (g *Game) timeLoopEcho() {
	if !g.session.TimeLoopActive {
		return
	}
	g.say(ui.ToneGlitch, fmt.Sprintf("You have lived this moment before. (iteration %d)", g.session.LoopCount))
}

// closeScene ends every scene with a vision and a pause.
func (g *Game) closeScene() {
	g.hallucinate(false)
	g.beat()
}
