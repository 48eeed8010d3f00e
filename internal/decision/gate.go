package decision

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/osiris/internal/player"
	"github.com/samdwyer/osiris/internal/telemetry"
	"github.com/samdwyer/osiris/internal/ui"
)

// InvalidInputStress is added to stress for every rejected answer.
const InvalidInputStress = 2

// Terminal is the console surface the gate needs.
type Terminal interface {
	Prompter
	Say(tone ui.Tone, text string)
}

// Requirement is an advisory stat threshold shown next to an option.
// It never prevents selection; scene logic re-checks the stat itself.
type Requirement struct {
	Stat player.Stat
	Min  int
}

// Met reports whether p satisfies the requirement.
func (r Requirement) Met(p *player.State) bool {
	return p.Meets(r.Stat, r.Min)
}

// Annotation returns the display tag for the requirement.
func (r Requirement) Annotation(p *player.State) string {
	if r.Met(p) {
		return "[Available]"
	}
	return fmt.Sprintf("[LOCKED - need %s %d]", r.Stat, r.Min)
}

// Option is one numbered entry of a choice.
type Option struct {
	Label       string
	Requirement *Requirement
}

// Needs is shorthand for an option with an advisory requirement.
func Needs(label string, stat player.Stat, min int) Option {
	return Option{Label: label, Requirement: &Requirement{Stat: stat, Min: min}}
}

// Options builds plain options from labels.
func Options(labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, l := range labels {
		out[i] = Option{Label: l}
	}
	return out
}

// Choice is a set of options presented together.
type Choice struct {
	Name     string // Used for tracing, e.g. "investigation"
	Question string
	Options  []Option
	// Parse overrides the default 1..len(Options) parser.
	Parse func(answer string) (int, error)
}

// PenaltyFunc observes the stress penalty applied after an invalid answer.
type PenaltyFunc func(stress int, crossed player.Threshold)

// Gate presents choices, validates answers and charges stress for bad input.
type Gate struct {
	term      Terminal
	player    *player.State
	logger    *zap.Logger
	onPenalty PenaltyFunc
}

// NewGate creates a gate that reads stats from and charges penalties to p.
func NewGate(term Terminal, p *player.State, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{term: term, player: p, logger: logger}
}

// OnPenalty registers a hook run after each stress penalty.
func (g *Gate) OnPenalty(fn PenaltyFunc) {
	g.onPenalty = fn
}

// SetPlayer points the gate at a different player, e.g. after character creation.
func (g *Gate) SetPlayer(p *player.State) {
	g.player = p
}

// Choose presents c and returns the validated 1-based index.
func (g *Gate) Choose(ctx context.Context, c Choice) (int, error) {
	if len(c.Options) == 0 {
		return 0, errors.New("choice has no options")
	}

	_, span := telemetry.Tracer("decision").Start(ctx, "decision.choose")
	defer span.End()

	locked := 0
	for i, opt := range c.Options {
		line := fmt.Sprintf("%d) %s", i+1, opt.Label)
		if opt.Requirement != nil {
			line += "  " + opt.Requirement.Annotation(g.player)
			if !opt.Requirement.Met(g.player) {
				locked++
			}
		}
		g.term.Say(ui.TonePrompt, line)
	}

	parse := c.Parse
	if parse == nil {
		parse = IntRange(1, len(c.Options))
	}

	v := Validator[int]{
		Parse:   parse,
		Penalty: g.penalize,
	}
	question := c.Question
	if question == "" {
		question = "Choose:"
	}

	index, attempts, err := v.Ask(g.term, question)
	span.SetAttributes(
		attribute.String("choice.name", c.Name),
		attribute.Int("choice.options", len(c.Options)),
		attribute.Int("choice.locked", locked),
		attribute.Int("choice.attempts", attempts),
	)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	span.SetAttributes(attribute.Int("choice.selected", index))
	if opt := c.Options[index-1]; opt.Requirement != nil && !opt.Requirement.Met(g.player) {
		span.SetAttributes(attribute.Bool("choice.selected_locked", true))
	}
	return index, nil
}

func (g *Gate) penalize(attempt int, answer string, err error) {
	stress, crossed := g.player.ModifyStress(InvalidInputStress)
	g.logger.Debug("invalid input",
		zap.Int("attempt", attempt),
		zap.String("answer", answer),
		zap.Error(err),
		zap.Int("stress", stress),
	)

	msg := "Invalid choice."
	if strings.TrimSpace(answer) == "" {
		msg = "Say something."
	}
	g.term.Say(ui.ToneDanger, msg+" Your pulse quickens.")

	if g.onPenalty != nil {
		g.onPenalty(stress, crossed)
	}
}
