package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"MATHBOARD_PROBLEM_ID", "MATHBOARD_EXPORT_DIR", "MATHBOARD_HISTORY_LIMIT",
		"MATHBOARD_SHARE_ENABLED", "MATHBOARD_SHARE_PORT", "MATHBOARD_SHARE_INTERVAL",
		"MATHBOARD_MDNS_ENABLED", "MATHBOARD_WINDOW_WIDTH", "MATHBOARD_WINDOW_HEIGHT",
	} {
		t.Setenv(k, "")
	}

	c := Load()
	assert.Equal(t, "", c.ProblemID)
	assert.Equal(t, ".", c.ExportDir)
	assert.Zero(t, c.HistoryLimit)
	assert.False(t, c.Share.Enabled)
	assert.Equal(t, 8888, c.Share.Port)
	assert.Equal(t, 250*time.Millisecond, c.Share.Interval)
	assert.True(t, c.Share.MDNS)
	assert.Equal(t, float32(1200), c.Window.Width)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MATHBOARD_PROBLEM_ID", "quad-7")
	t.Setenv("MATHBOARD_HISTORY_LIMIT", "50")
	t.Setenv("MATHBOARD_SHARE_ENABLED", "yes")
	t.Setenv("MATHBOARD_SHARE_INTERVAL", "2")
	t.Setenv("MATHBOARD_MDNS_ENABLED", "false")
	t.Setenv("MATHBOARD_WINDOW_HEIGHT", "600.5")
	t.Setenv("MATHBOARD_SHARE_PORT", "not-a-port")

	c := Load()
	assert.Equal(t, "quad-7", c.ProblemID)
	assert.Equal(t, 50, c.HistoryLimit)
	assert.True(t, c.Share.Enabled)
	assert.Equal(t, 2*time.Second, c.Share.Interval)
	assert.False(t, c.Share.MDNS)
	assert.Equal(t, float32(600.5), c.Window.Height)
	assert.Equal(t, 8888, c.Share.Port)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MATHBOARD_PROBLEM_ID", "from-env")
	t.Setenv("MATHBOARD_SHARE_PORT", "9000")

	c := Load()
	err := c.ParseFlags("mathboard", []string{
		"-problem", "from-flag", "-share", "-share-interval", "100ms", "-history", "-3",
	})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", c.ProblemID)
	assert.True(t, c.Share.Enabled)
	assert.Equal(t, 9000, c.Share.Port)
	assert.Equal(t, 100*time.Millisecond, c.Share.Interval)
	assert.Zero(t, c.HistoryLimit)
	assert.False(t, c.Discover)

	assert.Error(t, c.ParseFlags("mathboard", []string{"-nope"}))
}
