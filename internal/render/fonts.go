package render

import (
	"log"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const maxCachedFaces = 64

var (
	regularOnce sync.Once
	regularFont *truetype.Font
)

func loadRegular() *truetype.Font {
	regularOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("[RENDER] Failed to parse font: %v", err)
			return
		}
		regularFont = f
	})
	return regularFont
}

// faceCache keeps one face per rounded pixel size.
type faceCache struct {
	faces map[float64]font.Face
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[float64]font.Face)}
}

// face returns a face for the given pixel size, or nil if no font could be
// loaded. Sizes are rounded to half pixels.
func (c *faceCache) face(px float64) font.Face {
	size := math.Round(px*2) / 2
	if size < 1 {
		size = 1
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	ttf := loadRegular()
	if ttf == nil {
		return nil
	}
	if len(c.faces) >= maxCachedFaces {
		c.faces = make(map[float64]font.Face)
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[size] = f
	return f
}
