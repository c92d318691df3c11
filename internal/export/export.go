// Package export writes rendered whiteboard frames to disk.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fogleman/gg"
)

// ErrNoFrame is returned when nothing has been rendered yet.
var ErrNoFrame = errors.New("export: no frame rendered yet")

// FileName names an export: whiteboard-<id>.<ext>, or the current time in
// unix milliseconds when id is empty.
func FileName(id string, now time.Time, ext string) string {
	id = sanitize(id)
	if id == "" {
		id = strconv.FormatInt(now.UnixMilli(), 10)
	}
	return fmt.Sprintf("whiteboard-%s.%s", id, strings.TrimPrefix(ext, "."))
}

func sanitize(id string) string {
	id = strings.TrimSpace(id)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, id)
}

// Exporter writes frames into Dir using the board's problem id.
type Exporter struct {
	Dir string
	ID  string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (e *Exporter) path(ext string) (string, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return filepath.Join(dir, FileName(e.ID, now(), ext)), nil
}

// PNG saves the frame and returns the written path.
func (e *Exporter) PNG(frame image.Image) (string, error) {
	if isEmpty(frame) {
		log.Println("[EXPORT] Nothing rendered yet, skipping PNG export")
		return "", ErrNoFrame
	}
	path, err := e.path("png")
	if err != nil {
		return "", err
	}
	if err := gg.SavePNG(path, frame); err != nil {
		return "", fmt.Errorf("save png: %w", err)
	}
	log.Printf("[EXPORT] Wrote %s (%dx%d)", path, frame.Bounds().Dx(), frame.Bounds().Dy())
	return path, nil
}

// EncodePNG writes the frame as PNG, favouring speed over size. It is used
// for frames sent to viewers.
func EncodePNG(w io.Writer, frame image.Image) error {
	if isEmpty(frame) {
		return ErrNoFrame
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, frame)
}

func isEmpty(frame image.Image) bool {
	return frame == nil || frame.Bounds().Empty()
}
