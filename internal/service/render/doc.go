// Package render wires settings, the version resolver and the documentation
// configuration together for the ptdocs commands.
//
// Run renders the configuration, Sources reports how the version was found
// and Init writes a sample settings file.
package render
