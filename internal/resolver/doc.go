// Package resolver determines the release string shown in the documentation.
//
// A Resolver walks an ordered list of Providers (VERSION files, the VCS
// describe command, optionally the binary's build info) and returns the first
// value produced. When every provider comes up empty the fallback literal is
// returned, so Resolve never fails.
package resolver
