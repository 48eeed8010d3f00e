package player

// Phase is a position in the narrative state machine.
// Phases only ever move forward, one step at a time.
type Phase int

const (
	// PhaseIntro is the login and first contact with OSIRIS.
	PhaseIntro Phase = iota
	// PhaseInvestigation is the search of the lab.
	PhaseInvestigation
	// PhaseConfrontation is the interrogation by OSIRIS.
	PhaseConfrontation
	// PhaseEscape is the attempt to leave the facility.
	PhaseEscape
	// PhaseFinalChoice is the ending selection.
	PhaseFinalChoice
	// PhaseComplete is terminal.
	PhaseComplete
)

// Phases lists every phase in narrative order.
var Phases = []Phase{
	PhaseIntro,
	PhaseInvestigation,
	PhaseConfrontation,
	PhaseEscape,
	PhaseFinalChoice,
	PhaseComplete,
}

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseInvestigation:
		return "investigation"
	case PhaseConfrontation:
		return "confrontation"
	case PhaseEscape:
		return "escape"
	case PhaseFinalChoice:
		return "final_choice"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	return p >= PhaseIntro && p <= PhaseComplete
}

// Next returns the phase that follows p. PhaseComplete is its own successor.
func (p Phase) Next() Phase {
	if p >= PhaseComplete {
		return PhaseComplete
	}
	return p + 1
}

// Terminal reports whether no further scenes can run.
func (p Phase) Terminal() bool {
	return p == PhaseComplete
}
