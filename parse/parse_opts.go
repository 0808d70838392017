package parse

import (
	"fmt"

	"github.com/rowtree/rowtree/token"
)

// KeySource selects which column supplies a group's key.
type KeySource int

const (
	// KeySourceType keys groups by the canonical type cell, falling back
	// to the element name when the type cell is blank.
	KeySourceType KeySource = iota
	// KeySourceName always keys groups by the canonical element name.
	KeySourceName
)

func (k KeySource) String() string {
	switch k {
	case KeySourceType:
		return "type"
	case KeySourceName:
		return "name"
	}
	return "<unknown key source>"
}

func ParseKeySource(s string) (KeySource, error) {
	switch s {
	case "type", "t":
		return KeySourceType, nil
	case "name", "n":
		return KeySourceName, nil
	}
	return 0, fmt.Errorf("unrecognized key source %q", s)
}

type parseOpts struct {
	markers   token.Markers
	keySource KeySource
}

func (o *parseOpts) keyFor(row *Row) string {
	name := o.markers.Canonical(row.Name)
	if o.keySource == KeySourceName {
		return name
	}
	if t := o.markers.Canonical(row.Type); t != "" {
		return t
	}
	return name
}

type Option func(*parseOpts)

func makeOpts(opts []Option) *parseOpts {
	o := &parseOpts{markers: token.DefaultMarkers}
	for _, f := range opts {
		f(o)
	}
	return o
}

func WithMarkers(m token.Markers) Option {
	return func(o *parseOpts) { o.markers = m }
}

func WithKeySource(k KeySource) Option {
	return func(o *parseOpts) { o.keySource = k }
}
