package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/osiris/internal/decision"
	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/ui"
)

// createCharacter runs the login terminal and allocates attributes.
// Invalid answers here are re-asked without a stress penalty.
func (g *Game) createCharacter(ctx context.Context) error {
	g.say(ui.ToneNarration, "--- Secure Access Terminal ---")
	g.say(ui.ToneSystem, "New personnel record. Identify yourself.")

	reject := func(_ int, _ string, err error) {
		g.say(ui.ToneDanger, "Rejected: "+err.Error())
	}

	name, _, err := decision.Validator[string]{
		Parse: func(answer string) (string, error) {
			return answer, player.ValidateToken(answer)
		},
		Penalty: func(int, string, error) {
			g.say(ui.ToneDanger, "Usernames are a single word.")
		},
	}.Ask(g.term, "Username:")
	if err != nil {
		return err
	}

	age, _, err := decision.Validator[int]{
		Parse:   decision.IntRange(0, 150),
		Penalty: reject,
	}.Ask(g.term, "Age:")
	if err != nil {
		return err
	}

	g.say(ui.ToneSystem, fmt.Sprintf("Allocate up to %d points across strength, intelligence and dexterity.", player.AttributeBudget))

	remaining := player.AttributeBudget
	allocate := func(stat player.Stat) (int, error) {
		v, _, err := decision.Validator[int]{
			Parse:   decision.IntRange(0, remaining),
			Penalty: reject,
		}.Ask(g.term, fmt.Sprintf("%s (0-%d):", displayName(stat.String()), remaining))
		remaining -= v
		return v, err
	}

	var attrs player.Attributes
	if attrs.Strength, err = allocate(player.StatStrength); err != nil {
		return err
	}
	if attrs.Intelligence, err = allocate(player.StatIntelligence); err != nil {
		return err
	}
	if attrs.Dexterity, err = allocate(player.StatDexterity); err != nil {
		return err
	}

	p, err := player.New(name, age, attrs)
	if err != nil {
		return fmt.Errorf("create character: %w", err)
	}
	g.usePlayer(p)

	g.logger.Info("character created",
		zap.String("name", p.Name),
		zap.Int("strength", p.Strength),
		zap.Int("intelligence", p.Intelligence),
		zap.Int("dexterity", p.Dexterity),
	)
	g.say(ui.ToneCalm, fmt.Sprintf("Access granted. Welcome back, Dr. %s.", p.Name))
	g.checkpoint(ctx)
	return nil
}
