package ir

import "testing"

func TestCloneIndependent(t *testing.T) {
	orig := Group("g", Leaf("x"), Group("h", Leaf("y")))
	cp := orig.Clone()
	cp.Values[0].Name = "z"
	if orig.Values[0].Name != "x" {
		t.Errorf("Clone shares leaf storage: %q", orig.Values[0].Name)
	}
}

func TestVisitOrder(t *testing.T) {
	tree := Group("g", Leaf("a"), Group("h", Leaf("b")), Leaf("c"))
	var pre []string
	err := tree.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Name)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"g", "a", "h", "b", "c"}
	if len(pre) != len(want) {
		t.Fatalf("pre-order = %v, want %v", pre, want)
	}
	for i := range want {
		if pre[i] != want[i] {
			t.Fatalf("pre-order = %v, want %v", pre, want)
		}
	}
}

func TestVisitSkipsChildren(t *testing.T) {
	tree := Group("g", Leaf("a"))
	count := 0
	err := tree.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("visited %d nodes, want 1", count)
	}
}
