package token

import "strings"

// Markers is the set of characters whose leading run encodes nesting depth.
type Markers string

// DefaultMarkers covers both marker conventions seen in source sheets.
const DefaultMarkers Markers = ">/"

// Depth returns the nesting depth of a raw cell: the number of consecutive
// marker characters at the start of the trimmed string. Blank and unmarked
// cells sit at depth 0.
func (m Markers) Depth(raw string) int {
	s := strings.TrimSpace(raw)
	depth := 0
	for _, r := range s {
		if !strings.ContainsRune(string(m), r) {
			break
		}
		depth++
	}
	return depth
}

// Canonical reduces a raw cell to its identifier: the marker run is
// stripped, only the text after the last namespace separator is kept, and
// the result is trimmed and lowercased. An empty result means the cell has
// no identifier and callers must skip the row.
func (m Markers) Canonical(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, string(m))
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(strings.TrimSpace(s))
}
