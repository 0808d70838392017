// Package parse reconstructs schema trees from depth-annotated row
// sequences.
//
// Input rows ordinarily come from a spreadsheet sheet (see the sheet
// package): each row is an (element, type) cell pair whose nesting depth is
// encoded by a leading marker run in the element cell. [Parse] rebuilds the
// ordered tree in a single forward pass; malformed rows are dropped, never
// reported as errors.
package parse

import (
	"github.com/rowtree/rowtree/debug"
	"github.com/rowtree/rowtree/ir"
)

// Row is one (element, type) cell pair at a fixed position in the input.
// Missing cells are represented as empty strings.
type Row struct {
	Name string
	Type string
}

// Parse reconstructs the ordered tree encoded by rows.
//
// Rows with a blank element cell are skipped, as are rows whose depth skips
// a level no ancestor row has filled. Parse never fails: malformed input
// degrades to a smaller tree.
func Parse(rows []Row, opts ...Option) []*ir.Node {
	o := makeOpts(opts)
	nodes, _ := build(rows, 0, -1, o)
	return nodes
}

// Build collects the children block of a notional parent row at baseDepth:
// the consecutive rows, starting at start, whose depth exceeds baseDepth.
// Direct children sit at baseDepth+1; deeper rows are owned by intermediate
// children. It returns the children in document order along with the index
// of the first row it did not consume.
//
// A row at or above baseDepth belongs to an ancestor level and terminates
// the block without being consumed. A row more than one level below its
// parent is malformed and dropped on its own, without aborting the block.
func Build(rows []Row, start, baseDepth int, opts ...Option) ([]*ir.Node, int) {
	return build(rows, start, baseDepth, makeOpts(opts))
}

func build(rows []Row, start, baseDepth int, o *parseOpts) ([]*ir.Node, int) {
	var nodes []*ir.Node
	i := start
	for i < len(rows) {
		row := &rows[i]
		name := o.markers.Canonical(row.Name)
		if name == "" {
			// blank element cell, skipped at any depth
			i++
			continue
		}
		d := o.markers.Depth(row.Name)
		if d <= baseDepth {
			break
		}
		if d > baseDepth+1 {
			// indentation gap: no row filled depth baseDepth+1
			if debug.Parse() {
				debug.Logf("drop row %d %q: depth %d under parent depth %d", i, row.Name, d, baseDepth)
			}
			i++
			continue
		}
		if deeperFollows(rows, i, d, o) {
			children, next := build(rows, i+1, d, o)
			nodes = append(nodes, ir.Group(o.keyFor(row), children...))
			i = next
			continue
		}
		nodes = append(nodes, ir.Leaf(name))
		i++
	}
	return nodes, i
}

// deeperFollows reports whether the next row with a non-blank element cell
// sits strictly deeper than depth, which makes rows[i] a group.
func deeperFollows(rows []Row, i, depth int, o *parseOpts) bool {
	for j := i + 1; j < len(rows); j++ {
		if o.markers.Canonical(rows[j].Name) == "" {
			continue
		}
		return o.markers.Depth(rows[j].Name) > depth
	}
	return false
}
