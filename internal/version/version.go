package version

import (
	"fmt"
	"runtime/debug"
)

// develVersion is what the Go toolchain reports for non-module builds.
const develVersion = "(devel)"

var (
	// Version is the ptdocs release. It can be overridden via ldflags.
	Version = "dev"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns the ptdocs release, preferring ldflags over module build info.
func Short() string {
	if Version != "dev" && Version != "" {
		return Version
	}

	if v := ModuleVersion(); v != "" {
		return v
	}

	return Version
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("ptdocs version: %s, commit: %s, built at: %s", Short(), Commit, BuildTime)
}

// ModuleVersion returns the main module version recorded by the Go toolchain,
// or an empty string when the binary carries none.
func ModuleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == develVersion {
		return ""
	}

	return info.Main.Version
}
