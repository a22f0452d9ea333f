// Package version exposes build metadata for ptdocs itself.
//
// Version, Commit and BuildTime are injected via ldflags. When Version is left
// at "dev", Short falls back to the module version recorded in the binary.
package version
