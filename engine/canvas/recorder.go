package canvas

import "unicode/utf8"

// Op is one recorded drawing call.
type Op struct {
	Name string
	Text string    // style, font or text argument, if any
	Args []float64 // numeric arguments in call order
}

// Recorder is a Context2D that keeps every call as a display list. It can
// replay the list onto another context and is what tests draw into.
type Recorder struct {
	// Measure computes text widths. Defaults to half an em per rune.
	Measure func(f Font, s string) float64

	ops  []Op
	font Font
}

func NewRecorder() *Recorder {
	return &Recorder{font: DefaultFont}
}

// Ops returns the recorded display list.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset drops the display list but keeps the current font.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Count reports how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls named name.
func (r *Recorder) Filter(name string) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Replay issues the display list against dst. Queries are skipped.
func (r *Recorder) Replay(dst Context2D) {
	for _, op := range r.ops {
		a := op.Args
		switch op.Name {
		case "SetStrokeStyle":
			dst.SetStrokeStyle(op.Text)
		case "SetFillStyle":
			dst.SetFillStyle(op.Text)
		case "SetFont":
			dst.SetFont(op.Text)
		case "SetTextAlign":
			dst.SetTextAlign(op.Text)
		case "SetTextBaseline":
			dst.SetTextBaseline(op.Text)
		case "StrokeRect":
			dst.StrokeRect(a[0], a[1], a[2], a[3])
		case "FillRect":
			dst.FillRect(a[0], a[1], a[2], a[3])
		case "ClearRect":
			dst.ClearRect(a[0], a[1], a[2], a[3])
		case "BeginPath":
			dst.BeginPath()
		case "MoveTo":
			dst.MoveTo(a[0], a[1])
		case "LineTo":
			dst.LineTo(a[0], a[1])
		case "Arc":
			dst.Arc(a[0], a[1], a[2], a[3], a[4])
		case "Ellipse":
			dst.Ellipse(a[0], a[1], a[2], a[3], a[4], a[5], a[6])
		case "Stroke":
			dst.Stroke()
		case "Fill":
			dst.Fill()
		case "FillText":
			dst.FillText(op.Text, a[0], a[1])
		}
	}
}

func (r *Recorder) record(name, text string, args ...float64) {
	r.ops = append(r.ops, Op{Name: name, Text: text, Args: args})
}

func (r *Recorder) SetStrokeStyle(style string)     { r.record("SetStrokeStyle", style) }
func (r *Recorder) SetFillStyle(style string)       { r.record("SetFillStyle", style) }
func (r *Recorder) SetTextAlign(align string)       { r.record("SetTextAlign", align) }
func (r *Recorder) SetTextBaseline(baseline string) { r.record("SetTextBaseline", baseline) }

func (r *Recorder) SetFont(font string) {
	if f, err := ParseFont(font); err == nil {
		r.font = f
	}
	r.record("SetFont", font)
}

func (r *Recorder) StrokeRect(x, y, w, h float64) { r.record("StrokeRect", "", x, y, w, h) }
func (r *Recorder) FillRect(x, y, w, h float64)   { r.record("FillRect", "", x, y, w, h) }
func (r *Recorder) ClearRect(x, y, w, h float64)  { r.record("ClearRect", "", x, y, w, h) }
func (r *Recorder) BeginPath()                    { r.record("BeginPath", "") }
func (r *Recorder) MoveTo(x, y float64)           { r.record("MoveTo", "", x, y) }
func (r *Recorder) LineTo(x, y float64)           { r.record("LineTo", "", x, y) }
func (r *Recorder) Stroke()                       { r.record("Stroke", "") }
func (r *Recorder) Fill()                         { r.record("Fill", "") }

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.record("Arc", "", x, y, radius, startAngle, endAngle)
}

func (r *Recorder) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64) {
	r.record("Ellipse", "", x, y, radiusX, radiusY, rotation, startAngle, endAngle)
}

func (r *Recorder) MeasureText(s string) TextMetrics {
	r.record("MeasureText", s)
	if r.Measure != nil {
		return TextMetrics{Width: r.Measure(r.font, s)}
	}
	return TextMetrics{Width: float64(utf8.RuneCountInString(s)) * r.font.Size * 0.5}
}

func (r *Recorder) FillText(s string, x, y float64) { r.record("FillText", s, x, y) }
