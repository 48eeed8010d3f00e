package game

import (
	"github.com/google/uuid"

	"github.com/samdwyer/osiris/internal/dice"
)

// Session is the process-wide state of one program run. It is never saved:
// resuming a game always starts with a fresh session.
type Session struct {
	ID   string
	Dice *dice.Roller

	hallucinations []string

	TimeLoopActive bool
	LoopCount      int

	// Ending is set once the final choice resolves.
	Ending *Ending
}

// NewSession creates a session seeded for reproducible events.
func NewSession(seed int64) *Session {
	return &Session{
		ID:   uuid.NewString(),
		Dice: dice.New(seed),
	}
}

// ActivateTimeLoop marks the loop active and returns the new loop count.
func (s *Session) ActivateTimeLoop() int {
	s.TimeLoopActive = true
	s.LoopCount++
	return s.LoopCount
}

// AddHallucination adds a vision to the active set. It reports false when
// the vision is already active.
func (s *Session) AddHallucination(vision string) bool {
	for _, h := range s.hallucinations {
		if h == vision {
			return false
		}
	}
	s.hallucinations = append(s.hallucinations, vision)
	return true
}

// Hallucinations returns the active visions in the order they appeared.
func (s *Session) Hallucinations() []string {
	return append([]string(nil), s.hallucinations...)
}
