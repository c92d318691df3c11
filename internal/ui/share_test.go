package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MathBoard/internal/config"
)

func TestStatusBarShareText(t *testing.T) {
	test.NewTempApp(t)
	s := newStatusBar()
	s.SetViewers(3)
	assert.Empty(t, s.share.Text)

	s.SetShareURL("http://10.0.0.2:8888/frame.png")
	assert.Equal(t, "Sharing at http://10.0.0.2:8888/frame.png (3 viewers)", s.share.Text)
	s.SetViewers(1)
	assert.Equal(t, "Sharing at http://10.0.0.2:8888/frame.png (1 viewer)", s.share.Text)
}

func TestStartSharingPublishesFrames(t *testing.T) {
	ws, cfg := newTestWorkspace(t)
	cfg.Share = config.ShareConfig{Enabled: true, Port: 0, Interval: time.Millisecond}

	sh, err := startSharing(cfg, ws)
	require.NoError(t, err)
	defer sh.stop()

	assert.True(t, strings.HasPrefix(ws.Status.share.Text, "Sharing at http://"))
	require.NotNil(t, ws.Canvas.OnFrame)

	ws.Canvas.draw(50, 40)
	require.Eventually(t, func() bool { return sh.hub.Latest() != nil }, 2*time.Second, 5*time.Millisecond)
}
