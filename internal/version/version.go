// Package version exposes the build version string.
package version

// Version is the harness version, overridable at build time via
// -ldflags "-X github.com/agbru/questbench/internal/version.Version=...".
var Version = "0.3.0-dev"

// String returns the version string.
func String() string { return Version }
