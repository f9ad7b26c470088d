package canvas

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/hubastard/wand/engine/colors"
	"github.com/hubastard/wand/engine/text"
)

// Raster is a software Context2D over an *image.RGBA. Paths are filled and
// stroked (1px) with an anti-aliasing rasterizer; text uses a single
// typeface, the font family is only recorded.
type Raster struct {
	img   *image.RGBA
	faces *text.Faces
	z     *vector.Rasterizer

	stroke   colors.Color
	fill     colors.Color
	font     Font
	align    string
	baseline string

	path Path
}

// NewRaster allocates a w×h surface. A nil faces uses the bundled typeface.
func NewRaster(w, h int, faces *text.Faces) *Raster {
	if faces == nil {
		faces = text.DefaultFaces()
	}
	r := &Raster{
		faces:    faces,
		stroke:   colors.Black,
		fill:     colors.Black,
		font:     DefaultFont,
		align:    "start",
		baseline: "alphabetic",
	}
	r.Resize(w, h)
	return r
}

// Resize reallocates the backing image; like a canvas, contents are lost.
func (r *Raster) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.z = vector.NewRasterizer(w, h)
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) SetStrokeStyle(style string) {
	if c, err := colors.Parse(style); err == nil {
		r.stroke = c
	}
}

func (r *Raster) SetFillStyle(style string) {
	if c, err := colors.Parse(style); err == nil {
		r.fill = c
	}
}

func (r *Raster) SetFont(font string) {
	if f, err := ParseFont(font); err == nil {
		r.font = f
	}
}

func (r *Raster) SetTextAlign(align string)       { r.align = align }
func (r *Raster) SetTextBaseline(baseline string) { r.baseline = baseline }

func (r *Raster) FillRect(x, y, w, h float64) {
	draw.Draw(r.img, pixelRect(x, y, w, h), image.NewUniform(r.fill.RGBA()), image.Point{}, draw.Over)
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	draw.Draw(r.img, pixelRect(x, y, w, h), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	x0, y0, x1, y1 := float32(x), float32(y), float32(x+w), float32(y+h)
	r.strokePaths([][]Point{{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}})
}

func (r *Raster) BeginPath()         { r.path.Reset() }
func (r *Raster) MoveTo(x, y float64) { r.path.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.path.LineTo(x, y) }

func (r *Raster) Arc(x, y, radius, startAngle, endAngle float64) {
	r.path.Ellipse(x, y, radius, radius, 0, startAngle, endAngle)
}

func (r *Raster) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64) {
	r.path.Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle)
}

func (r *Raster) Stroke() { r.strokePaths(r.path.Subpaths()) }

func (r *Raster) Fill() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	drawn := false
	for _, sub := range r.path.Subpaths() {
		if len(sub) < 3 {
			continue
		}
		r.z.MoveTo(sub[0][0], sub[0][1])
		for _, p := range sub[1:] {
			r.z.LineTo(p[0], p[1])
		}
		r.z.ClosePath()
		drawn = true
	}
	if drawn {
		r.z.Draw(r.img, b, image.NewUniform(r.fill.RGBA()), image.Point{})
	}
}

func (r *Raster) MeasureText(s string) TextMetrics {
	face, err := r.faces.Face(r.font.Size)
	if err != nil {
		return TextMetrics{}
	}
	return TextMetrics{Width: text.Measure(face, s)}
}

func (r *Raster) FillText(s string, x, y float64) {
	face, err := r.faces.Face(r.font.Size)
	if err != nil {
		return
	}
	if r.align != "start" && r.align != "left" {
		x += AlignOffset(r.align, text.Measure(face, s))
	}
	ascent, descent := text.Metrics(face)
	y += BaselineOffset(r.baseline, ascent, descent)
	text.Draw(r.img, face, x, y, s, r.fill.RGBA())
}

// strokePaths outlines every segment as a 1px quad. Quads share winding so
// overlaps saturate instead of cancelling.
func (r *Raster) strokePaths(paths [][]Point) {
	const half = 0.5
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	drawn := false
	for _, sub := range paths {
		for i := 1; i < len(sub); i++ {
			p0, p1 := sub[i-1], sub[i]
			dx, dy := p1[0]-p0[0], p1[1]-p0[1]
			l := float32(math.Hypot(float64(dx), float64(dy)))
			if l == 0 {
				continue
			}
			nx, ny := -dy/l*half, dx/l*half
			r.z.MoveTo(p0[0]+nx, p0[1]+ny)
			r.z.LineTo(p1[0]+nx, p1[1]+ny)
			r.z.LineTo(p1[0]-nx, p1[1]-ny)
			r.z.LineTo(p0[0]-nx, p0[1]-ny)
			r.z.ClosePath()
			drawn = true
		}
	}
	if drawn {
		r.z.Draw(r.img, b, image.NewUniform(r.stroke.RGBA()), image.Point{})
	}
}

func pixelRect(x, y, w, h float64) image.Rectangle {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
}
