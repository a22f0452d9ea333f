// Package docs builds the immutable documentation configuration record and
// renders it for the documentation generator.
//
// A Configuration is computed once from settings and a resolved version and
// then only read. Getters hand out copies.
package docs
