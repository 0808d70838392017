package encode

import "github.com/fatih/color"

// Colors maps structural roles to sprintf-style colorizers for terminal
// viewing of the structured form.
type Colors struct {
	Field func(format string, a ...any) string
	Value func(format string, a ...any) string
	Punct func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field: color.RGB(196, 96, 16).SprintfFunc(),
		Value: color.RGB(128, 216, 236).SprintfFunc(),
		Punct: color.RGB(255, 0, 196).SprintfFunc(),
	}
}

func (es *EncState) field(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color.Field("%s", s)
}

func (es *EncState) value(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color.Value("%s", s)
}

func (es *EncState) punct(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color.Punct("%s", s)
}
