package encode

import "fmt"

// Format selects the structured output rendering.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	CompactFormat
)

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	case CompactFormat:
		return "compact"
	}
	return "<unknown format>"
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	case "compact", "c":
		return CompactFormat, nil
	}
	return 0, fmt.Errorf("unrecognized format %q", s)
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f Format) string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ".txt"
	}
}

// LeafRepr selects how leaves render in the structured form.
type LeafRepr int

const (
	// LeafNull renders leaves as null.
	LeafNull LeafRepr = iota
	// LeafEmpty renders leaves as an empty container.
	LeafEmpty
)

func ParseLeafRepr(s string) (LeafRepr, error) {
	switch s {
	case "null":
		return LeafNull, nil
	case "empty":
		return LeafEmpty, nil
	}
	return 0, fmt.Errorf("unrecognized leaf representation %q", s)
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeLeafRepr(r LeafRepr) EncodeOption {
	return func(es *EncState) { es.leafRepr = r }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c }
}
