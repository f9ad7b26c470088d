// Command sandbox opens a window with a small demo of the toolkit: a title,
// a spinning 3D scene and a live stats panel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hubastard/wand/engine/assets"
	"github.com/hubastard/wand/engine/core"
	"github.com/hubastard/wand/engine/platform"
	"github.com/hubastard/wand/engine/platform/headless"
	"github.com/hubastard/wand/engine/profiler"
)

// window is what the run loop needs from a backend beyond core.Window.
type window interface {
	core.Window
	Host() *platform.Host
	Close()
}

type options struct {
	config   string
	backend  string
	frames   int
	snapshot string
	profile  string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("sandbox", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "YAML config file")
	fs.StringVar(&o.backend, "backend", "", "window backend: headless or "+nativeBackend+" (overrides the config)")
	fs.IntVar(&o.frames, "frames", 0, "stop after this many frames (0 runs until closed)")
	fs.StringVar(&o.snapshot, "snapshot", "", "write the last headless frame to this PNG")
	fs.StringVar(&o.profile, "profile", "", "write a speedscope profile here (profile builds only)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

// newLogger logs human-readable lines to a terminal and JSON otherwise.
func newLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func openWindow(backend string, cfg core.Config, log *zap.Logger) (window, error) {
	faces, err := assets.LoadFont(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	switch backend {
	case "headless":
		return headless.FromConfig(cfg, faces), nil
	case nativeBackend:
		return openNative(cfg, faces, log)
	case "glfw", "raylib":
		return nil, fmt.Errorf("backend %q not built in, this build has %s: %w", backend, nativeBackend, core.ErrBadConfig)
	}
	return nil, fmt.Errorf("backend %q: %w", backend, core.ErrBadConfig)
}

func run(o options) error {
	cfg := core.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = core.LoadConfig(o.config); err != nil {
			return err
		}
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if profiler.Enabled {
		profiler.Init(1 << 16)
	}

	win, err := openWindow(cfg.Backend, cfg, log)
	if err != nil {
		return err
	}
	defer win.Close()

	app, err := core.New(win.Host(), "", cfg, log)
	if err != nil {
		return err
	}
	stats := newStatsPanel(app)
	d := buildDemo(app, stats.section)

	err = core.Run(app, win, core.RunOptions{
		MaxFrames: o.frames,
		Title:     cfg.Title,
		AfterFrame: func(frame int) {
			d.update(app)
			stats.update(frame)
		},
	})
	if err != nil {
		return err
	}

	if o.snapshot != "" {
		hw, ok := win.(*headless.Window)
		if !ok {
			return errors.New("-snapshot needs the headless backend")
		}
		if err := hw.Snapshot(o.snapshot); err != nil {
			return err
		}
		log.Info("snapshot written", zap.String("path", o.snapshot))
	}
	if profiler.Enabled {
		profiler.LogReport(log.Named("profile"))
		if o.profile != "" {
			if err := profiler.WriteSpeedscope(o.profile); err != nil {
				return err
			}
		}
	}
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}
