package ir

// Leaves collects the leaf identifiers of a tree in first-seen pre-order,
// without duplicates. The traversal keeps its own stack so pathologically
// deep trees cannot blow the goroutine stack.
func Leaves(nodes []*Node) []string {
	var res []string
	seen := map[string]bool{}
	stack := make([]*Node, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type == LeafType {
			if !seen[n.Name] {
				seen[n.Name] = true
				res = append(res, n.Name)
			}
			continue
		}
		for i := len(n.Values) - 1; i >= 0; i-- {
			stack = append(stack, n.Values[i])
		}
	}
	return res
}
