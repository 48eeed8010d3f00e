package game

import "time"

// Config holds game configuration options.
type Config struct {
	// Seed for random events. Used for reproducible playthroughs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// BeatDelay is the pause between narrative beats. Stress stretches it.
	BeatDelay time.Duration

	// SessionID identifies this run in logs and traces. Empty means a new UUID.
	SessionID string

	// Fresh discards any saved record before starting.
	Fresh bool
}
