package player

// Standing is the five-point relationship scale.
type Standing int

const (
	StandingHostile    Standing = -2
	StandingUnfriendly Standing = -1
	StandingNeutral    Standing = 0
	StandingFriendly   Standing = 1
	StandingAllied     Standing = 2
)

// String returns the display label for a standing.
func (s Standing) String() string {
	switch s {
	case StandingHostile:
		return "HOSTILE"
	case StandingUnfriendly:
		return "UNFRIENDLY"
	case StandingNeutral:
		return "NEUTRAL"
	case StandingFriendly:
		return "FRIENDLY"
	case StandingAllied:
		return "ALLIED"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s lies in [HOSTILE, ALLIED].
func (s Standing) Valid() bool {
	return s >= StandingHostile && s <= StandingAllied
}

// Shift returns s moved by delta and clamped into range.
func (s Standing) Shift(delta int) Standing {
	return Standing(clamp(int(s)+delta, int(StandingHostile), int(StandingAllied)))
}

// Relationship is one character's standing toward the player.
type Relationship struct {
	Who      string
	Standing Standing
}
