//go:build !raylib

package main

import (
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/core"
	glfwhost "github.com/hubastard/wand/engine/platform/glfw"
	"github.com/hubastard/wand/engine/text"
)

// raylib links its own GLFW, so a build carries one native backend.
const nativeBackend = "glfw"

func openNative(cfg core.Config, faces *text.Faces, log *zap.Logger) (window, error) {
	w, err := glfwhost.New(cfg, faces, log)
	if err != nil {
		return nil, err
	}
	return w, nil
}
