package canvas

import "math"

// Point is a path vertex in pixels.
type Point [2]float32

// Path accumulates subpaths the way a 2D canvas does between BeginPath and
// Stroke or Fill. Curves are flattened on entry.
type Path struct {
	subs [][]Point
}

func (p *Path) Reset() { p.subs = p.subs[:0] }

// Subpaths returns the flattened polylines. The slice is reused by Reset.
func (p *Path) Subpaths() [][]Point { return p.subs }

func (p *Path) MoveTo(x, y float64) {
	p.subs = append(p.subs, []Point{{float32(x), float32(y)}})
}

// LineTo extends the current subpath, starting one when there is none.
func (p *Path) LineTo(x, y float64) {
	if len(p.subs) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.subs) - 1
	p.subs[last] = append(p.subs[last], Point{float32(x), float32(y)})
}

// Ellipse appends an elliptical arc joined to the current subpath. The
// segment count grows with the arc length, within [8, 256].
func (p *Path) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	n := int(math.Abs(sweep) * math.Max(radiusX, radiusY) / 2)
	n = min(max(n, 8), 256)
	cr, sr := math.Cos(rotation), math.Sin(rotation)
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		ex, ey := radiusX*math.Cos(a), radiusY*math.Sin(a)
		p.LineTo(x+ex*cr-ey*sr, y+ex*sr+ey*cr)
	}
}

// AlignOffset is the x shift that applies a text alignment to a run of the
// given width.
func AlignOffset(align string, width float64) float64 {
	switch align {
	case "center":
		return -width / 2
	case "right", "end":
		return -width
	}
	return 0
}

// BaselineOffset is the y shift from the requested baseline to the
// alphabetic one.
func BaselineOffset(baseline string, ascent, descent float64) float64 {
	switch baseline {
	case "middle":
		return (ascent - descent) / 2
	case "top", "hanging":
		return ascent
	case "bottom", "ideographic":
		return -descent
	}
	return 0
}
