package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T) *State {
	t.Helper()
	p, err := New("Carter", 34, Attributes{Strength: 10, Intelligence: 10, Dexterity: 10})
	require.NoError(t, err)
	return p
}

func TestNewValidatesCreation(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		age     int
		attrs   Attributes
		wantErr error
	}{
		{"valid", "Carter", 30, Attributes{10, 10, 10}, nil},
		{"under budget", "Carter", 0, Attributes{1, 2, 3}, nil},
		{"empty name", "", 30, Attributes{10, 10, 10}, ErrInvalidName},
		{"spaced name", "Dr Carter", 30, Attributes{10, 10, 10}, ErrInvalidName},
		{"negative age", "Carter", -1, Attributes{10, 10, 10}, ErrInvalidAge},
		{"negative stat", "Carter", 30, Attributes{-1, 10, 10}, ErrInvalidStat},
		{"over budget", "Carter", 30, Attributes{11, 10, 10}, ErrBudgetExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.player, tt.age, tt.attrs)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, MaxPsyche, p.Sanity)
			assert.Equal(t, MinPsyche, p.Stress)
			assert.Equal(t, PhaseIntro, p.Phase)
			assert.Len(t, p.Relationships, len(DefaultRelationships))
		})
	}
}

func TestDefaultIsNoSaveSentinel(t *testing.T) {
	p := Default()
	assert.False(t, p.Exists())
	assert.Equal(t, "", p.Name)
	assert.Equal(t, PhaseIntro, p.Phase)
}

func TestPsycheStaysInRange(t *testing.T) {
	p := newTestPlayer(t)
	deltas := []int{15, 40, 80, -300, 7, 250, -3, 99, -99, 1000}

	for _, d := range deltas {
		stress, _ := p.ModifyStress(d)
		sanity, _ := p.ModifySanity(-d)
		assert.GreaterOrEqual(t, stress, MinPsyche)
		assert.LessOrEqual(t, stress, MaxPsyche)
		assert.GreaterOrEqual(t, sanity, MinPsyche)
		assert.LessOrEqual(t, sanity, MaxPsyche)
		assert.Equal(t, stress, p.Stress)
		assert.Equal(t, sanity, p.Sanity)
	}
}

func TestStressThresholds(t *testing.T) {
	p := newTestPlayer(t)

	_, crossed := p.ModifyStress(60)
	assert.Equal(t, ThresholdNone, crossed)

	_, crossed = p.ModifyStress(10)
	assert.Equal(t, ThresholdStressElevated, crossed)

	// Already above 70: no repeat report
	_, crossed = p.ModifyStress(5)
	assert.Equal(t, ThresholdNone, crossed)

	_, crossed = p.ModifyStress(50)
	assert.Equal(t, ThresholdStressCritical, crossed)
	assert.Equal(t, MaxPsyche, p.Stress)

	// Falling and rising again re-crosses
	p.ModifyStress(-100)
	_, crossed = p.ModifyStress(95)
	assert.Equal(t, ThresholdStressCritical, crossed, "a jump over both thresholds reports the most severe")
}

func TestSanityThresholds(t *testing.T) {
	p := newTestPlayer(t)

	_, crossed := p.ModifySanity(-50)
	assert.Equal(t, ThresholdNone, crossed, "exactly 50 is not below 50")

	_, crossed = p.ModifySanity(-1)
	assert.Equal(t, ThresholdSanityShaken, crossed)

	_, crossed = p.ModifySanity(-20)
	assert.Equal(t, ThresholdSanityFracturing, crossed)

	_, crossed = p.ModifySanity(-500)
	assert.Equal(t, ThresholdSanityLost, crossed)
	assert.True(t, p.Defeated())

	_, crossed = p.ModifySanity(-5)
	assert.Equal(t, ThresholdNone, crossed)
}

func TestUpdateRelationshipClamps(t *testing.T) {
	p := newTestPlayer(t)

	for _, d := range []int{1, 1, 1, 5, -2, -10, 3, -1} {
		s, ok := p.UpdateRelationship(Antagonist, d)
		require.True(t, ok)
		assert.True(t, s.Valid(), "standing %d out of range", s)
	}

	s, ok := p.UpdateRelationship(Antagonist, 100)
	require.True(t, ok)
	assert.Equal(t, StandingAllied, s)
}

func TestUpdateRelationshipUnknownKeyIsNoop(t *testing.T) {
	p := newTestPlayer(t)
	before := append([]Relationship(nil), p.Relationships...)

	_, ok := p.UpdateRelationship("nobody", 2)
	assert.False(t, ok)
	assert.Equal(t, before, p.Relationships)

	_, known := p.Relationship("nobody")
	assert.False(t, known)
}

func TestRecordSecretIsIdempotent(t *testing.T) {
	p := newTestPlayer(t)

	assert.True(t, p.RecordSecret("time_loop"))
	assert.True(t, p.RecordSecret("core_access"))
	assert.False(t, p.RecordSecret("time_loop"))

	assert.Equal(t, []string{"time_loop", "core_access"}, p.Secrets)
	assert.True(t, p.HasSecret("core_access"))
	assert.False(t, p.HasSecret("unknown"))
}

func TestAddItemAppends(t *testing.T) {
	p := newTestPlayer(t)
	p.AddItem("fire_axe")
	p.AddItem("fire_axe")

	assert.Equal(t, []string{"fire_axe", "fire_axe"}, p.Inventory)
	assert.True(t, p.HasItem("fire_axe"))
}

func TestAdvancePhaseNeverSkipsOrRegresses(t *testing.T) {
	p := newTestPlayer(t)
	prev := p.Phase

	for i := 0; i < 10; i++ {
		next := p.AdvancePhase()
		if prev == PhaseComplete {
			assert.Equal(t, PhaseComplete, next)
		} else {
			assert.Equal(t, prev+1, next)
		}
		prev = next
	}
}

func TestStatLookup(t *testing.T) {
	p, err := New("Carter", 30, Attributes{Strength: 8, Intelligence: 9, Dexterity: 6})
	require.NoError(t, err)

	assert.Equal(t, 8, p.Stat(StatStrength))
	assert.True(t, p.Meets(StatIntelligence, 8))
	assert.False(t, p.Meets(StatDexterity, 7))
}

func TestValidateToken(t *testing.T) {
	assert.NoError(t, ValidateToken("consciousness_transfer"))
	assert.Error(t, ValidateToken(""))
	assert.Error(t, ValidateToken("two words"))
	assert.Error(t, ValidateToken("tab\there"))
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "final_choice", PhaseFinalChoice.String())
	assert.Equal(t, "unknown", Phase(42).String())
	assert.False(t, Phase(-1).Valid())
	assert.True(t, PhaseComplete.Terminal())
}

func TestCrossingsListEveryThreshold(t *testing.T) {
	assert.Equal(t, []Threshold{ThresholdStressElevated, ThresholdStressCritical}, StressCrossings(60, 95))
	assert.Equal(t, []Threshold{ThresholdStressElevated}, StressCrossings(69, 70))
	assert.Empty(t, StressCrossings(95, 60))
	assert.Empty(t, StressCrossings(72, 85))

	assert.Equal(t, []Threshold{ThresholdSanityShaken, ThresholdSanityFracturing}, SanityCrossings(55, 25))
	assert.Equal(t,
		[]Threshold{ThresholdSanityShaken, ThresholdSanityFracturing, ThresholdSanityLost},
		SanityCrossings(100, 0))
	assert.Empty(t, SanityCrossings(25, 55))
}
