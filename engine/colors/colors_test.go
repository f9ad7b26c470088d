package colors

import (
	"errors"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"  Grey ", color.NRGBA{128, 128, 128, 255}},
		{"darkgreen", color.NRGBA{0, 100, 0, 255}},
		{"#07ce88", color.NRGBA{7, 206, 136, 255}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#00000080", color.NRGBA{0, 0, 0, 128}},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got := c.NRGBA(); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "chartreuse-ish", "#12", "#zzzzzz"} {
		if _, err := Parse(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("Parse(%q) err = %v, want ErrBadColor", in, err)
		}
	}
}

func TestOutlineMatchesHex(t *testing.T) {
	if got, want := Outline.NRGBA(), MustParse("#07ce88").NRGBA(); got != want {
		t.Errorf("Outline = %v, want %v", got, want)
	}
}

func TestRGBAPremultiplies(t *testing.T) {
	got := White.WithAlpha(0.5).RGBA()
	if got.A != 128 || got.R != 128 {
		t.Errorf("RGBA() = %v, want half-premultiplied white", got)
	}
}
