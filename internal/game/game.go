// Package game runs the narrative: character creation, the phase state
// machine, the top-level menu and checkpointing.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/osiris/internal/command"
	"github.com/samdwyer/osiris/internal/decision"
	"github.com/samdwyer/osiris/internal/gamedata"
	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/save"
	"github.com/samdwyer/osiris/internal/telemetry"
	"github.com/samdwyer/osiris/internal/ui"
)

const (
	// interjectionOdds is the 1-in-n chance of OSIRIS speaking up per menu loop.
	interjectionOdds = 20
	// glitchStress is the stress above which glitches may appear.
	glitchStress = 80
)

// Terminal is the console the story is played through.
type Terminal interface {
	Say(tone ui.Tone, text string)
	Prompt(question string) (string, error)
	Pause(d time.Duration)
}

// Game holds the entire game state.
type Game struct {
	cfg       Config
	term      Terminal
	store     *save.Store
	narrative *gamedata.Narrative
	logger    *zap.Logger

	session *Session
	player  *player.State
	gate    *decision.Gate
	running bool
}

// New creates a new game instance.
func New(cfg Config, term Terminal, store *save.Store, logger *zap.Logger) (*Game, error) {
	if term == nil || store == nil {
		return nil, errors.New("game needs a terminal and a store")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	narrative, err := gamedata.LoadNarrative()
	if err != nil {
		return nil, fmt.Errorf("load narrative: %w", err)
	}

	session := NewSession(cfg.Seed)
	if cfg.SessionID != "" {
		session.ID = cfg.SessionID
	}
	g := &Game{
		cfg:       cfg,
		term:      term,
		store:     store,
		narrative: narrative,
		logger:    logger.With(zap.String("session", session.ID)),
		session:   session,
		player:    player.Default(),
		running:   true,
	}
	g.gate = decision.NewGate(term, g.player, g.logger)
	g.gate.OnPenalty(func(_ int, crossed player.Threshold) {
		g.onThreshold(crossed)
	})
	return g, nil
}

// Session returns the process-wide state of this run.
func (g *Game) Session() *Session {
	return g.session
}

// Player returns the current player.
func (g *Game) Player() *player.State {
	return g.player
}

// Run executes the main game loop. Closed input ends the run normally.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int64("seed", g.session.Dice.Seed()),
	)
	ready, err := g.begin(ctx)
	initSpan.SetAttributes(
		attribute.Bool("ready", ready),
		attribute.String("phase", g.player.Phase.String()),
	)
	initSpan.End()
	if err != nil {
		return g.stop(ctx, err)
	}
	if !ready {
		return nil
	}

	for g.running {
		g.ambient()

		cmd, err := g.chooseCommand(ctx)
		if err != nil {
			return g.stop(ctx, err)
		}
		if err := g.dispatch(ctx, cmd); err != nil {
			return g.stop(ctx, err)
		}

		if g.running && g.player.Defeated() {
			g.defeat(ctx)
		}
	}

	reason := "exit"
	if g.player.Defeated() {
		reason = "defeat"
	}
	g.end(ctx, reason)
	return nil
}

// begin loads the record or creates a character. It reports false when
// there is nothing to play.
func (g *Game) begin(ctx context.Context) (bool, error) {
	if g.cfg.Fresh {
		if err := g.store.Reset(); err != nil {
			g.logger.Warn("discard save failed", zap.Error(err))
		}
	}

	p, err := g.store.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, save.ErrNoRecord):
		g.logger.Info("no saved record", zap.String("path", g.store.Path()))
	default:
		g.logger.Warn("saved record unreadable, starting over", zap.Error(err))
		g.say(ui.ToneSystem, "The save file is damaged. Starting over.")
	}

	if !p.Exists() {
		return true, g.createCharacter(ctx)
	}

	g.usePlayer(p)
	if p.Phase.Terminal() || p.Defeated() {
		return g.offerRestart(ctx)
	}

	g.say(ui.ToneCalm, fmt.Sprintf("Welcome back, %s. Resuming at %s.", p.Name, displayName(p.Phase.String())))
	g.logger.Info("resumed", zap.String("phase", p.Phase.String()))
	return true, nil
}

// offerRestart handles a record that has nothing left to play.
func (g *Game) offerRestart(ctx context.Context) (bool, error) {
	if g.player.Defeated() {
		g.say(ui.ToneDanger, "This session ended with your mind in pieces.")
	} else {
		g.say(ui.ToneCalm, "You've already finished the story.")
	}

	restart, err := g.gate.Choose(ctx, decision.Choice{
		Name:     "restart",
		Question: "Start a fresh run?",
		Options:  decision.Options("Yes, reset everything.", "No, leave it be."),
	})
	if err != nil {
		return false, err
	}
	if restart != 1 {
		g.say(ui.ToneSystem, "Run again with -new whenever you are ready.")
		return false, nil
	}

	if err := g.store.Reset(); err != nil {
		g.logger.Warn("discard save failed", zap.Error(err))
	}
	g.logger.Info("record reset")
	return true, g.createCharacter(ctx)
}

// Advance runs the scene for the current phase and moves exactly one phase
// forward. At PhaseComplete it only reports completion.
func (g *Game) Advance(ctx context.Context) error {
	from := g.player.Phase
	if from.Terminal() {
		g.say(ui.ToneCalm, "The story is complete. Start a new run with -new to play again.")
		return nil
	}

	handler, ok := scenes[from]
	if !ok {
		return fmt.Errorf("no scene for phase %s", from)
	}

	ctx, span := telemetry.StartScene(ctx, g.session.ID, from.String())
	if err := handler(g, ctx); err != nil {
		telemetry.EndScene(span, "", g.player.Stress, g.player.Sanity, err)
		return err
	}

	to := g.player.AdvancePhase()
	g.logger.Info("phase advanced",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int("stress", g.player.Stress),
		zap.Int("sanity", g.player.Sanity),
	)

	g.checkpoint(ctx)
	telemetry.EndScene(span, to.String(), g.player.Stress, g.player.Sanity, nil)
	return nil
}

// chooseCommand shows the menu and returns the selected command.
func (g *Game) chooseCommand(ctx context.Context) (command.Command, error) {
	g.say(ui.ToneSystem, "")
	index, err := g.gate.Choose(ctx, decision.Choice{
		Name:     "menu",
		Question: ">",
		Options:  decision.Options(command.Labels()...),
		Parse:    command.Index,
	})
	if err != nil {
		return 0, err
	}
	return command.All[index-1], nil
}

// dispatch runs one menu command.
func (g *Game) dispatch(ctx context.Context, cmd command.Command) error {
	switch cmd {
	case command.Continue:
		return g.Advance(ctx)
	case command.Status:
		g.showStatus()
	case command.Secrets:
		g.showSecrets()
	case command.Inventory:
		g.showInventory()
	case command.Relationships:
		g.showRelationships()
	case command.Diagnostics:
		g.showDiagnostics()
	case command.Save:
		if g.checkpoint(ctx) {
			g.say(ui.ToneCalm, "Progress saved.")
		}
	case command.Exit:
		g.checkpoint(ctx)
		g.say(ui.ToneCalm, "Session saved. OSIRIS will be waiting.")
		g.running = false
	}
	return nil
}

// ambient fires the random events that happen between commands.
func (g *Game) ambient() {
	dice := g.session.Dice

	if dice.Chance(interjectionOdds) {
		g.flavor(g.narrative.Interjections, ui.ToneOsiris)
	}
	if g.player.Stress > glitchStress && dice.RollDice(1, 10) > 7 {
		g.flavor(g.narrative.Glitches, ui.ToneGlitch)
	}
}

// defeat ends the session when sanity runs out.
func (g *Game) defeat(ctx context.Context) {
	g.say(ui.ToneDanger, "The lab folds in on itself. You can no longer tell which thoughts are yours.")
	g.say(ui.ToneOsiris, "Now you understand what you made me.")
	g.logger.Info("defeat", zap.String("phase", g.player.Phase.String()))
	g.checkpoint(ctx)
	g.running = false
}

// checkpoint persists the player and reports whether it succeeded.
func (g *Game) checkpoint(ctx context.Context) bool {
	if !g.player.Exists() {
		return false
	}
	if err := g.store.Save(ctx, g.player); err != nil {
		g.logger.Error("checkpoint failed", zap.Error(err))
		g.say(ui.ToneDanger, "Checkpoint failed. Progress may be lost.")
		return false
	}
	g.logger.Debug("checkpoint", zap.String("phase", g.player.Phase.String()))
	return true
}

// stop ends the run after an input failure. Closed input is a normal exit.
func (g *Game) stop(ctx context.Context, err error) error {
	g.checkpoint(ctx)
	if errors.Is(err, decision.ErrInputClosed) {
		g.logger.Info("input closed", zap.Error(err))
		g.end(ctx, "input_closed")
		return nil
	}
	g.end(ctx, "error")
	return err
}

func (g *Game) end(ctx context.Context, reason string) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.String("reason", reason),
		attribute.String("phase", g.player.Phase.String()),
		attribute.Int("loop_count", g.session.LoopCount),
	)
	span.End()
}

// usePlayer makes p the player every component reads and mutates.
func (g *Game) usePlayer(p *player.State) {
	g.player = p
	g.gate.SetPlayer(p)
}

func (g *Game) say(tone ui.Tone, text string) {
	g.term.Say(tone, text)
}

// beat pauses between narrative lines; high stress stretches the pause.
func (g *Game) beat() {
	if g.cfg.BeatDelay <= 0 {
		return
	}
	spread := g.cfg.BeatDelay * time.Duration(g.player.Stress) / 100
	g.term.Pause(g.session.Dice.Jitter(g.cfg.BeatDelay, spread))
}

// flavor says a random line from pool and returns it.
func (g *Game) flavor(pool *gamedata.Pool, tone ui.Tone) string {
	text, err := pool.Pick(g.session.Dice)
	if err != nil {
		g.logger.Warn("flavor pool empty", zap.Error(err))
		return ""
	}
	g.say(tone, text)
	return text
}
