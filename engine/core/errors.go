package core

import "errors"

var (
	// ErrSurfaceUnavailable means the host has no canvas under the id.
	ErrSurfaceUnavailable = errors.New("core: surface unavailable")

	// ErrNoActiveScene means the active path has no scene.
	ErrNoActiveScene = errors.New("core: no active scene")

	ErrUnknownScene = errors.New("core: unknown scene")
	ErrBadConfig    = errors.New("core: bad config")
)
