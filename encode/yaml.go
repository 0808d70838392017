package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/rowtree/rowtree/ir"
)

func encodeYAML(nodes []*ir.Node, w io.Writer, es *EncState) error {
	d, err := yaml.Marshal(yamlValue(nodes, es))
	if err != nil {
		return err
	}
	return writeString(w, string(d))
}

// yamlValue builds an order-preserving MapSlice mirroring the JSON form.
func yamlValue(children []*ir.Node, es *EncState) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(children))
	for _, c := range children {
		var v any
		switch {
		case !c.IsLeaf():
			v = yamlValue(c.Values, es)
		case es.leafRepr == LeafEmpty:
			v = yaml.MapSlice{}
		default:
			v = nil
		}
		ms = append(ms, yaml.MapItem{Key: c.Name, Value: v})
	}
	return ms
}
