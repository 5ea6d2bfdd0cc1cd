// Package version provides build version information for the application.
// This is a separate package so that cli and api can both report it
// without importing each other.
package version

// Version is the build version string, set by ldflags during build.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v1.2.0-dev"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"
