// Package platform resolves the host operating system once at startup and
// maps abstract command intents to the concrete shell syntax of that system.
package platform

import "runtime"

// Platform identifies the host operating system family.
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
	Other   Platform = "other"
)

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// Detect returns the Platform for the current process. Callers should detect
// once at startup and pass the value explicitly, so tests can simulate any
// platform without touching process-wide state.
func Detect() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS converts a GOOS value into a Platform.
func FromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Other
	}
}
