package encode

import (
	"strings"

	"github.com/rowtree/rowtree/ir"
)

// Compact renders a tree as a single line in the bracket grammar: a leaf is
// its bare identifier, a group is {key:{child1,child2,...}}, and siblings
// are comma-joined. A tree that is not a single group is wrapped in one
// outer brace pair.
func Compact(nodes []*ir.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = compactNode(n)
	}
	s := strings.Join(parts, ",")
	if len(nodes) == 1 && nodes[0].Type == ir.GroupType {
		return s
	}
	return "{" + s + "}"
}

func compactNode(n *ir.Node) string {
	if n.IsLeaf() {
		return n.Name
	}
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(n.Name)
	b.WriteString(":{")
	for i, c := range n.Values {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(compactNode(c))
	}
	b.WriteString("}}")
	return b.String()
}
