package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/ui"
)

// addStress changes stress and runs the hook of every threshold it crosses.
func (g *Game) addStress(delta int) {
	before := g.player.Stress
	after, _ := g.player.ModifyStress(delta)
	for _, t := range player.StressCrossings(before, after) {
		g.onThreshold(t)
	}
}

// addSanity changes sanity and runs the hook of every threshold it crosses.
func (g *Game) addSanity(delta int) {
	before := g.player.Sanity
	after, _ := g.player.ModifySanity(delta)
	for _, t := range player.SanityCrossings(before, after) {
		g.onThreshold(t)
	}
}

// onThreshold renders the consequence of a newly crossed threshold.
func (g *Game) onThreshold(t player.Threshold) {
	if t == player.ThresholdNone {
		return
	}
	g.logger.Info("threshold crossed",
		zap.String("threshold", t.String()),
		zap.Int("stress", g.player.Stress),
		zap.Int("sanity", g.player.Sanity),
	)

	switch t {
	case player.ThresholdStressElevated:
		g.say(ui.ToneDanger, "Your hands won't stop shaking.")
	case player.ThresholdStressCritical:
		g.say(ui.ToneDanger, "Your heart hammers against your ribs. The room tilts.")
		g.addSanity(-10)
		g.hallucinate(true)
	case player.ThresholdSanityShaken:
		g.say(ui.ToneDanger, "Something in the corner of your eye refuses to leave.")
		g.hallucinate(true)
	case player.ThresholdSanityFracturing:
		g.say(ui.ToneDanger, "You no longer trust the walls.")
		g.flavor(g.narrative.Interjections, ui.ToneOsiris)
	case player.ThresholdSanityLost:
		g.say(ui.ToneDanger, "The last thread snaps.")
	}
}

// hallucinate shows a vision. It becomes part of the active set when
// forced or when sanity is already shaken.
func (g *Game) hallucinate(force bool) {
	vision := g.flavor(g.narrative.Visions, ui.ToneDanger)
	if vision == "" {
		return
	}
	if force || g.player.Sanity < player.SanityShakenAt {
		g.session.AddHallucination(vision)
	}
}
