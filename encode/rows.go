package encode

import (
	"strings"

	"github.com/rowtree/rowtree/ir"
	"github.com/rowtree/rowtree/parse"
)

// Rows flattens a tree back to marker-indented (element, type) rows, the
// inverse of parse.Parse up to the key-selection policy: group keys land in
// the element column with an empty type cell, so reparsing with either key
// policy reproduces the tree. Childless groups lose their grouping and
// reparse as leaves.
func Rows(nodes []*ir.Node, marker string) []parse.Row {
	var rows []parse.Row
	var walk func(ns []*ir.Node, depth int)
	walk = func(ns []*ir.Node, depth int) {
		prefix := strings.Repeat(marker, depth)
		for _, n := range ns {
			rows = append(rows, parse.Row{Name: prefix + n.Name})
			if !n.IsLeaf() {
				walk(n.Values, depth+1)
			}
		}
	}
	walk(nodes, 0)
	return rows
}
