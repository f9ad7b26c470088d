// Package canvas defines the 2D drawing context the toolkit paints into and
// ships two implementations of it: a Recorder that keeps a display list and
// a Raster that paints into an *image.RGBA.
package canvas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TextMetrics is the result of MeasureText.
type TextMetrics struct {
	Width float64
}

// Context2D is the host drawing context. Styles are CSS-like strings:
// colours such as "white" or "#07ce88", fonts as "{px}px {family}".
type Context2D interface {
	SetStrokeStyle(style string)
	SetFillStyle(style string)
	SetFont(font string)
	SetTextAlign(align string)
	SetTextBaseline(baseline string)

	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64)
	Stroke()
	Fill()

	MeasureText(s string) TextMetrics
	FillText(s string, x, y float64)
}

// ErrBadFont is returned by ParseFont.
var ErrBadFont = errors.New("canvas: bad font")

// Font is a parsed "{px}px {family}" string.
type Font struct {
	Size   float64
	Family string
}

func (f Font) String() string {
	return strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}

// ParseFont reads the subset of the CSS font shorthand the toolkit emits.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || !strings.HasSuffix(fields[0], "px") {
		return Font{}, fmt.Errorf("%w: %q", ErrBadFont, s)
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "px"), 64)
	if err != nil || px <= 0 {
		return Font{}, fmt.Errorf("%w: %q", ErrBadFont, s)
	}
	return Font{Size: px, Family: strings.Join(fields[1:], " ")}, nil
}

// DefaultFont mirrors the browser default of "10px sans-serif".
var DefaultFont = Font{Size: 10, Family: "sans-serif"}
