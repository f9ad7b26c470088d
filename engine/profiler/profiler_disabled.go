//go:build !profile

package profiler

import "errors"

// Enabled reports whether scopes are recorded in this build.
const Enabled = false

// No-op versions when the "profile" build tag is not set.

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Report() []Scope { return nil }

func WriteSpeedscope(path string) error {
	return errors.New("profiler: built without the profile tag")
}
