package main

import (
	"fmt"
	"runtime"

	"github.com/hubastard/wand/engine/core"
	"github.com/hubastard/wand/engine/ui"
)

// Registered span names of the stats panel.
const (
	statsFps    = "stats.fps"
	statsFrame  = "stats.frame"
	statsMemory = "stats.memory"
)

// memEvery spaces out runtime.ReadMemStats, which stops the world.
const memEvery = 30

// statsPanel feeds the stats column with the frame count, the measured fps
// and heap usage.
type statsPanel struct {
	app     *core.Application
	section *ui.Section
	mem     runtime.MemStats
}

// newStatsPanel builds the stats column: three rows, one text span each,
// stacked top to bottom.
func newStatsPanel(app *core.Application) *statsPanel {
	col := app.NewSectionWithContainer("stats", 1, 1, ui.NewContainer(ui.Uniform(0.02, 2, 8), ui.ScrollY))
	for i, name := range []string{statsFps, statsFrame, statsMemory} {
		// Each row takes an equal share of what is left below it.
		row := app.NewSection(name+".row", 1, 1/float64(3-i), 0)
		row.RegisterSpan(ui.NewTextSpan(name, "", 1, 1))
		col.AddSection(row)
	}
	return &statsPanel{app: app, section: col}
}

func (p *statsPanel) update(frame int) {
	p.set(statsFps, fmt.Sprintf("%d fps", p.app.Fps()))
	p.set(statsFrame, fmt.Sprintf("frame %d", frame))
	if frame%memEvery == 0 {
		runtime.ReadMemStats(&p.mem)
		p.set(statsMemory, fmt.Sprintf("heap %.2f MB, %d gc", float64(p.mem.HeapAlloc)/(1<<20), p.mem.NumGC))
	}
}

func (p *statsPanel) set(name, text string) {
	ref, ok := p.app.State().FetchSpan(name)
	if !ok {
		return
	}
	_ = ref.Dispatch(text)
}
