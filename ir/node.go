// Package ir holds the tree representation built from depth-annotated rows.
//
// A [Node] is either a leaf (a terminal field identified by its canonical
// name) or a group (a keyed container of ordered children). Trees are plain
// ordered slices of top-level nodes: no cycles, no sharing, owned by the
// parse that produced them.
package ir

type Node struct {
	Type   Type
	Name   string
	Values []*Node
}

// Leaf returns a terminal node carrying a canonical identifier.
func Leaf(name string) *Node {
	return &Node{Type: LeafType, Name: name}
}

// Group returns a container node keyed by name with the given children.
func Group(name string, children ...*Node) *Node {
	return &Node{Type: GroupType, Name: name, Values: children}
}

func (n *Node) IsLeaf() bool {
	return n.Type == LeafType
}

func (n *Node) Clone() *Node {
	res := &Node{Type: n.Type, Name: n.Name}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the subtree in document order. f is called with isPost false
// before a node's children and true after; returning false from the pre
// call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
