package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "savegame.txt", cfg.SavePath)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 30*time.Millisecond, cfg.TextDelay)
	assert.False(t, cfg.Plain)
	assert.Equal(t, "osiris", cfg.HoneycombDataset)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OSIRIS_SAVE_PATH", "/tmp/osiris.sav")
	t.Setenv("OSIRIS_SEED", "42")
	t.Setenv("OSIRIS_TEXT_DELAY", "0s")
	t.Setenv("OSIRIS_PLAIN", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/osiris.sav", cfg.SavePath)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, time.Duration(0), cfg.TextDelay)
	assert.True(t, cfg.Plain)
}

func TestLoadRejectsMalformed(t *testing.T) {
	t.Setenv("OSIRIS_SEED", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
