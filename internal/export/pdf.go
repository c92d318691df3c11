package export

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// pageMargin is kept free around the image, in millimetres.
const pageMargin = 10.0

// PDF places the frame on a landscape A4 page, scaled to fit and centered.
func (e *Exporter) PDF(frame image.Image) (string, error) {
	if isEmpty(frame) {
		log.Println("[EXPORT] Nothing rendered yet, skipping PDF export")
		return "", ErrNoFrame
	}
	path, err := e.path("pdf")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, frame); err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("Whiteboard "+e.ID, true)
	p.SetCreator("MathBoard", true)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("frame", opts, &buf)

	pw, ph := p.GetPageSize()
	x, y, w, h := fitRect(frame.Bounds(), pw-2*pageMargin, ph-2*pageMargin)
	p.ImageOptions("frame", pageMargin+x, pageMargin+y, w, h, false, opts, 0, "")

	if err := p.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote %s", path)
	return path, nil
}

// fitRect scales b into an area of aw by ah keeping its aspect ratio, and
// returns the centered placement.
func fitRect(b image.Rectangle, aw, ah float64) (x, y, w, h float64) {
	iw, ih := float64(b.Dx()), float64(b.Dy())
	s := math.Min(aw/iw, ah/ih)
	w, h = iw*s, ih*s
	return (aw - w) / 2, (ah - h) / 2, w, h
}
