// Package player holds the mutable character model and its invariants.
package player

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// AttributeBudget bounds strength + intelligence + dexterity at creation.
	AttributeBudget = 30

	MinPsyche = 0
	MaxPsyche = 100

	// Antagonist is the relationship key for OSIRIS.
	Antagonist = "osiris"
)

// DefaultRelationships are the characters known to every new campaign.
// Keys are fixed at creation; no character is added later.
var DefaultRelationships = []string{Antagonist, "dr_reyes", "director_kane"}

var (
	ErrInvalidName     = errors.New("name must be a single word")
	ErrInvalidAge      = errors.New("age must not be negative")
	ErrInvalidStat     = errors.New("attributes must not be negative")
	ErrBudgetExceeded  = fmt.Errorf("attributes exceed budget of %d", AttributeBudget)
	errTokenWhitespace = errors.New("token contains whitespace")
	errTokenEmpty      = errors.New("token is empty")
)

// Stat identifies one of the three core attributes.
type Stat int

const (
	StatStrength Stat = iota
	StatIntelligence
	StatDexterity
)

// String returns the attribute name.
func (s Stat) String() string {
	switch s {
	case StatStrength:
		return "strength"
	case StatIntelligence:
		return "intelligence"
	case StatDexterity:
		return "dexterity"
	default:
		return "unknown"
	}
}

// Attributes are the core stats chosen at creation and immutable afterwards.
type Attributes struct {
	Strength     int
	Intelligence int
	Dexterity    int
}

// Total returns the sum of all three attributes.
func (a Attributes) Total() int {
	return a.Strength + a.Intelligence + a.Dexterity
}

// Validate checks the creation-time allocation rules.
func (a Attributes) Validate() error {
	if a.Strength < 0 || a.Intelligence < 0 || a.Dexterity < 0 {
		return ErrInvalidStat
	}
	if a.Total() > AttributeBudget {
		return ErrBudgetExceeded
	}
	return nil
}

// State is the entire player model for one campaign.
type State struct {
	Name string
	Age  int

	Attributes

	Stress      int
	Sanity      int
	OsirisTrust int

	Relationships  []Relationship
	Secrets        []string // Discovery order, no duplicates
	Inventory      []string // Append-only
	HasAdminAccess bool

	Phase Phase
}

// Default returns the state used when no save exists.
// Its empty name is the "no save" sentinel.
func Default() *State {
	return &State{
		Sanity:        MaxPsyche,
		Relationships: []Relationship{},
		Secrets:       []string{},
		Inventory:     []string{},
		Phase:         PhaseIntro,
	}
}

// New creates a fresh character at the start of the story.
func New(name string, age int, attrs Attributes) (*State, error) {
	if err := ValidateToken(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	if age < 0 {
		return nil, ErrInvalidAge
	}
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	relationships := make([]Relationship, 0, len(DefaultRelationships))
	for _, who := range DefaultRelationships {
		relationships = append(relationships, Relationship{Who: who, Standing: StandingNeutral})
	}

	return &State{
		Name:          name,
		Age:           age,
		Attributes:    attrs,
		Stress:        MinPsyche,
		Sanity:        MaxPsyche,
		Relationships: relationships,
		Secrets:       []string{},
		Inventory:     []string{},
		Phase:         PhaseIntro,
	}, nil
}

// Exists reports whether the state represents a real character.
// A legitimately empty name is indistinguishable from "no save".
func (s *State) Exists() bool {
	return s.Name != ""
}

// Stat returns the value of a core attribute.
func (s *State) Stat(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Strength
	case StatIntelligence:
		return s.Intelligence
	case StatDexterity:
		return s.Dexterity
	default:
		return 0
	}
}

// Meets reports whether a core attribute is at least min.
func (s *State) Meets(stat Stat, min int) bool {
	return s.Stat(stat) >= min
}

// ModifyStress adds delta to stress, clamps into [0,100], and reports the
// threshold newly crossed, if any.
func (s *State) ModifyStress(delta int) (int, Threshold) {
	before := s.Stress
	s.Stress = clamp(before+delta, MinPsyche, MaxPsyche)
	return s.Stress, stressCrossed(before, s.Stress)
}

// ModifySanity adds delta to sanity, clamps into [0,100], and reports the
// threshold newly crossed, if any.
func (s *State) ModifySanity(delta int) (int, Threshold) {
	before := s.Sanity
	s.Sanity = clamp(before+delta, MinPsyche, MaxPsyche)
	return s.Sanity, sanityCrossed(before, s.Sanity)
}

// Defeated reports whether sanity has run out.
func (s *State) Defeated() bool {
	return s.Sanity <= MinPsyche
}

// ModifyTrust shifts the OSIRIS trust scalar. It is unbounded.
func (s *State) ModifyTrust(delta int) int {
	s.OsirisTrust += delta
	return s.OsirisTrust
}

// Relationship returns the standing of who, if known.
func (s *State) Relationship(who string) (Standing, bool) {
	for _, r := range s.Relationships {
		if r.Who == who {
			return r.Standing, true
		}
	}
	return StandingNeutral, false
}

// UpdateRelationship shifts the standing of who by delta, clamped into
// [HOSTILE, ALLIED]. Unknown characters are ignored and report false.
func (s *State) UpdateRelationship(who string, delta int) (Standing, bool) {
	for i := range s.Relationships {
		if s.Relationships[i].Who == who {
			s.Relationships[i].Standing = s.Relationships[i].Standing.Shift(delta)
			return s.Relationships[i].Standing, true
		}
	}
	return StandingNeutral, false
}

// RecordSecret adds a secret. It reports false when already discovered.
func (s *State) RecordSecret(id string) bool {
	if s.HasSecret(id) {
		return false
	}
	s.Secrets = append(s.Secrets, id)
	return true
}

// HasSecret reports whether id has been discovered.
func (s *State) HasSecret(id string) bool {
	for _, secret := range s.Secrets {
		if secret == id {
			return true
		}
	}
	return false
}

// AddItem appends an item. Duplicates are kept.
func (s *State) AddItem(id string) {
	s.Inventory = append(s.Inventory, id)
}

// HasItem reports whether the inventory holds id.
func (s *State) HasItem(id string) bool {
	for _, item := range s.Inventory {
		if item == id {
			return true
		}
	}
	return false
}

// GrantAdminAccess sets admin access. It is never revoked.
func (s *State) GrantAdminAccess() {
	s.HasAdminAccess = true
}

// AdvancePhase moves one phase forward and returns the new phase.
func (s *State) AdvancePhase() Phase {
	s.Phase = s.Phase.Next()
	return s.Phase
}

// ValidateToken checks that s is a non-empty identifier without whitespace.
func ValidateToken(s string) error {
	if s == "" {
		return errTokenEmpty
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return errTokenWhitespace
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
