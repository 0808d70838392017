package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLeavesOrderAndDedup(t *testing.T) {
	tree := []*Node{
		Leaf("a"),
		Group("g1",
			Leaf("b"),
			Group("g2", Leaf("a"), Leaf("c")),
		),
		Group("g3", Leaf("b"), Leaf("d")),
	}
	want := []string{"a", "b", "c", "d"}
	got := Leaves(tree)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Leaves mismatch (-want +got):\n%s", d)
	}
}

func TestLeavesIdempotent(t *testing.T) {
	tree := []*Node{
		Group("g", Leaf("x"), Leaf("y")),
		Leaf("x"),
	}
	first := Leaves(tree)
	second := Leaves(tree)
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("Leaves not idempotent (-first +second):\n%s", d)
	}
}

func TestLeavesEmptyGroup(t *testing.T) {
	if got := Leaves([]*Node{Group("g")}); len(got) != 0 {
		t.Errorf("Leaves(empty group) = %v, want none", got)
	}
}

func TestLeavesDeepNesting(t *testing.T) {
	const depth = 5000
	n := Leaf("bottom")
	for i := 0; i < depth; i++ {
		n = Group("g", n)
	}
	got := Leaves([]*Node{n})
	if len(got) != 1 || got[0] != "bottom" {
		t.Errorf("Leaves(deep) = %v, want [bottom]", got)
	}
}
