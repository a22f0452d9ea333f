// Package config defines the ptdocs settings file and helpers to find, load,
// validate and save it in YAML format.
//
// Defaults reproduce the hand-written Sphinx configuration of PT, so running
// without a settings file yields the same documentation build.
package config
