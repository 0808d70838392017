package ir

import "fmt"

type Type int

const (
	LeafType Type = iota
	GroupType
)

func (t Type) String() string {
	switch t {
	case LeafType:
		return "Leaf"
	case GroupType:
		return "Group"
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	switch string(d) {
	case "Leaf":
		*t = LeafType
	case "Group":
		*t = GroupType
	default:
		return fmt.Errorf("unrecognized type %q", d)
	}
	return nil
}
