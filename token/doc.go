// Package token classifies raw spreadsheet cells.
//
// A cell's nesting depth is encoded as a leading run of marker characters
// (for example ">>name" sits at depth 2). [Markers.Depth] counts the run and
// [Markers.Canonical] strips it, along with any namespace-style prefix, to
// produce the identifier used everywhere else in the module.
package token
