package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight-alpha RGBA colour with channels in [0..1].
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGreen   = Color{0, 100.0 / 255, 0, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}

	// Outline is the debug stroke used around scenes and sections.
	Outline = Color{7.0 / 255, 206.0 / 255, 136.0 / 255, 1}
)

// ErrBadColor is returned by Parse for strings it does not understand.
var ErrBadColor = errors.New("colors: bad color")

var named = map[string]Color{
	"transparent": Transparent,
	"white":       White,
	"red":         Red,
	"green":       {0, 128.0 / 255, 0, 1},
	"lime":        Green,
	"blue":        Blue,
	"black":       Black,
	"magenta":     Magenta,
	"fuchsia":     Magenta,
	"cyan":        Cyan,
	"aqua":        Cyan,
	"yellow":      Yellow,
	"gray":        Gray,
	"grey":        Gray,
	"darkgreen":   DarkGreen,
	"darkgray":    {169.0 / 255, 169.0 / 255, 169.0 / 255, 1},
	"darkgrey":    {169.0 / 255, 169.0 / 255, 169.0 / 255, 1},
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA converts c to a premultiplied image/color value.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c[3])
	return color.RGBA{
		R: uint8(clamp01(c[0])*a*255 + 0.5),
		G: uint8(clamp01(c[1])*a*255 + 0.5),
		B: uint8(clamp01(c[2])*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// NRGBA converts c to a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c[0])*255 + 0.5),
		G: uint8(clamp01(c[1])*255 + 0.5),
		B: uint8(clamp01(c[2])*255 + 0.5),
		A: uint8(clamp01(c[3])*255 + 0.5),
	}
}

// Parse reads a CSS-like colour: a keyword ("white", "grey", ...) or a hex
// literal in #rgb, #rrggbb or #rrggbbaa form.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
