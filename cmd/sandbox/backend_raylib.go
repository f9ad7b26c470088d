//go:build raylib

package main

import (
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/core"
	rlhost "github.com/hubastard/wand/engine/platform/raylib"
	"github.com/hubastard/wand/engine/text"
)

const nativeBackend = "raylib"

// raylib draws text with its own font, faces is unused.
func openNative(cfg core.Config, _ *text.Faces, log *zap.Logger) (window, error) {
	w, err := rlhost.New(cfg, log)
	if err != nil {
		return nil, err
	}
	return w, nil
}
