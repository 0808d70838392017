package encode

import (
	"encoding/json"
	"io"
)

// EncodeLeaves writes a leaf list one identifier per line, or as a JSON
// array when asJSON is set. Order is preserved either way.
func EncodeLeaves(leaves []string, w io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(leaves)
	}
	for _, leaf := range leaves {
		if err := writeString(w, leaf+"\n"); err != nil {
			return err
		}
	}
	return nil
}
