package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(1, 1, color.Black)
	return img
}

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "whiteboard-42.png", FileName("42", now, "png"))
	assert.Equal(t, "whiteboard-1700000000123.png", FileName("", now, "png"))
	assert.Equal(t, "whiteboard-1700000000123.pdf", FileName("  ", now, ".pdf"))
	assert.Equal(t, "whiteboard-a_b.png", FileName("a/b", now, "png"))
}

func TestExportPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := &Exporter{Dir: dir, ID: "p7"}

	path, err := e.PNG(testFrame(30, 20))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "whiteboard-p7.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())

	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Zero(t, r)
}

func TestExportWithoutFrame(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Dir: dir, Now: func() time.Time { return time.UnixMilli(5) }}

	_, err := e.PNG(nil)
	assert.ErrorIs(t, err, ErrNoFrame)
	_, err = e.PDF(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrNoFrame)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportPDF(t *testing.T) {
	e := &Exporter{Dir: t.TempDir(), Now: func() time.Time { return time.UnixMilli(99) }}
	path, err := e.PDF(testFrame(400, 100))
	require.NoError(t, err)
	assert.Equal(t, "whiteboard-99.pdf", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestFitRect(t *testing.T) {
	x, y, w, h := fitRect(image.Rect(0, 0, 400, 100), 200, 100)
	assert.InDelta(t, 200.0, w, 1e-9)
	assert.InDelta(t, 50.0, h, 1e-9)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 25.0, y, 1e-9)
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, testFrame(4, 4)))
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)

	assert.ErrorIs(t, EncodePNG(&buf, nil), ErrNoFrame)
}
