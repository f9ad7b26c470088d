package ui

import (
	"strconv"
	"strings"

	"github.com/hubastard/wand/engine/canvas"
)

const (
	fitStartPx  = 5
	fitStepPx   = 2
	fitMaxSteps = 1000
)

// BestFitSize returns the smallest pixel size, stepping from 5px by 2px, at
// which text measures at least target wide in family. Blank text is 5.
func BestFitSize(ctx canvas.Context2D, text string, target float64, family string) int {
	px := fitStartPx
	if strings.TrimSpace(text) == "" {
		return px
	}
	for i := 0; i < fitMaxSteps; i++ {
		ctx.SetFont(fontString(px, family))
		if ctx.MeasureText(text).Width >= target {
			return px
		}
		px += fitStepPx
	}
	return px
}

func fontString(px int, family string) string {
	return strconv.Itoa(px) + "px " + family
}
