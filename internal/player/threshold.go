package player

// Threshold names a psychological boundary crossed by a stress or sanity change.
type Threshold int

const (
	ThresholdNone Threshold = iota
	// ThresholdStressElevated fires when stress rises to 70 or above.
	ThresholdStressElevated
	// ThresholdStressCritical fires when stress rises to 90 or above.
	ThresholdStressCritical
	// ThresholdSanityShaken fires when sanity falls below 50.
	ThresholdSanityShaken
	// ThresholdSanityFracturing fires when sanity falls below 30.
	ThresholdSanityFracturing
	// ThresholdSanityLost fires when sanity reaches 0.
	ThresholdSanityLost
)

const (
	StressElevatedAt   = 70
	StressCriticalAt   = 90
	SanityShakenAt     = 50
	SanityFracturingAt = 30
)

// String returns a human-readable threshold name.
func (t Threshold) String() string {
	switch t {
	case ThresholdNone:
		return "none"
	case ThresholdStressElevated:
		return "stress_elevated"
	case ThresholdStressCritical:
		return "stress_critical"
	case ThresholdSanityShaken:
		return "sanity_shaken"
	case ThresholdSanityFracturing:
		return "sanity_fracturing"
	case ThresholdSanityLost:
		return "sanity_lost"
	default:
		return "unknown"
	}
}

// StressCrossings lists every stress threshold newly reached between before
// and after, least severe first.
func StressCrossings(before, after int) []Threshold {
	var out []Threshold
	if before < StressElevatedAt && after >= StressElevatedAt {
		out = append(out, ThresholdStressElevated)
	}
	if before < StressCriticalAt && after >= StressCriticalAt {
		out = append(out, ThresholdStressCritical)
	}
	return out
}

// SanityCrossings lists every sanity threshold newly crossed between before
// and after, least severe first.
func SanityCrossings(before, after int) []Threshold {
	var out []Threshold
	if before >= SanityShakenAt && after < SanityShakenAt {
		out = append(out, ThresholdSanityShaken)
	}
	if before >= SanityFracturingAt && after < SanityFracturingAt {
		out = append(out, ThresholdSanityFracturing)
	}
	if before > 0 && after <= 0 {
		out = append(out, ThresholdSanityLost)
	}
	return out
}

// stressCrossed reports the most severe stress threshold newly reached.
func stressCrossed(before, after int) Threshold {
	return mostSevere(StressCrossings(before, after))
}

// sanityCrossed reports the most severe sanity threshold newly reached.
func sanityCrossed(before, after int) Threshold {
	return mostSevere(SanityCrossings(before, after))
}

func mostSevere(crossed []Threshold) Threshold {
	if len(crossed) == 0 {
		return ThresholdNone
	}
	return crossed[len(crossed)-1]
}
