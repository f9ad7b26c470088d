package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Faces hands out font.Face values of one typeface at arbitrary pixel sizes.
// Faces are built on first use and cached per size.
type Faces struct {
	font  *opentype.Font
	cache map[float64]font.Face
}

// NewFaces parses TTF/OTF data.
func NewFaces(ttf []byte) (*Faces, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Faces{font: ft, cache: make(map[float64]font.Face)}, nil
}

// DefaultFaces uses the Go Regular typeface bundled with x/image.
func DefaultFaces() *Faces {
	f, err := NewFaces(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

// Face returns the face for sizePx, rounded to a quarter pixel.
func (f *Faces) Face(sizePx float64) (font.Face, error) {
	if sizePx <= 0 {
		sizePx = 1
	}
	key := math.Round(sizePx*4) / 4
	if face, ok := f.cache[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size: key, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	f.cache[key] = face
	return face, nil
}

// Close releases every cached face.
func (f *Faces) Close() {
	for k, face := range f.cache {
		_ = face.Close()
		delete(f.cache, k)
	}
}

// Measure returns the advance width of s in pixels.
func Measure(face font.Face, s string) float64 {
	return fromFixed(font.MeasureString(face, s))
}

// Metrics returns ascent and descent in pixels, both positive.
func Metrics(face font.Face) (ascent, descent float64) {
	m := face.Metrics()
	return fromFixed(m.Ascent), fromFixed(m.Descent)
}

// Draw paints s with its baseline origin at (x, y).
func Draw(dst draw.Image, face font.Face, x, y float64, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
}

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
func toFixed(v float64) fixed.Int26_6   { return fixed.Int26_6(math.Round(v * 64)) }
