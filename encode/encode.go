// Package encode renders reconstructed trees.
//
// The structured form is an insertion-ordered JSON (or YAML) mapping from
// node keys to child mappings, with leaves rendered as null by default. The
// compact form is a single-line bracket grammar used for lightweight
// inspection. Leaf lists render one identifier per line or as a JSON array.
package encode

import (
	"io"
	"strconv"

	"github.com/rowtree/rowtree/ir"
)

type EncState struct {
	indent   int
	format   Format
	leafRepr LeafRepr

	Color *Colors
}

// Encode writes the structured form of a tree. The top-level value is
// always a mapping keyed by the top-level nodes; key order is insertion
// order, which the stdlib json package cannot provide for maps.
func Encode(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case YAMLFormat:
		return encodeYAML(nodes, w, es)
	case CompactFormat:
		return writeString(w, Compact(nodes)+"\n")
	}
	if err := writeObject(nodes, w, es, 0); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeObject(children []*ir.Node, w io.Writer, es *EncState, depth int) error {
	if len(children) == 0 {
		return writeString(w, es.punct("{}"))
	}
	if err := writeString(w, es.punct("{")+"\n"); err != nil {
		return err
	}
	pad := indentString(es, depth+1)
	for i, c := range children {
		if err := writeString(w, pad+es.field(strconv.Quote(c.Name))+es.punct(":")+" "); err != nil {
			return err
		}
		if c.IsLeaf() {
			if err := writeString(w, es.value(es.leafValue())); err != nil {
				return err
			}
		} else if err := writeObject(c.Values, w, es, depth+1); err != nil {
			return err
		}
		sep := "\n"
		if i < len(children)-1 {
			sep = es.punct(",") + "\n"
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
	}
	return writeString(w, indentString(es, depth)+es.punct("}"))
}

func (es *EncState) leafValue() string {
	if es.leafRepr == LeafEmpty {
		return "{}"
	}
	return "null"
}

func indentString(es *EncState, depth int) string {
	pad := make([]byte, es.indent*depth)
	for i := range pad {
		pad[i] = ' '
	}
	return string(pad)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
