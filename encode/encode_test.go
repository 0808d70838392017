package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rowtree/rowtree/ir"
	"github.com/rowtree/rowtree/parse"
)

func TestEncodeJSON(t *testing.T) {
	tests := []struct {
		name string
		tree []*ir.Node
		opts []EncodeOption
		want string
	}{
		{
			name: "leaf and group",
			tree: []*ir.Node{
				ir.Leaf("a"),
				ir.Group("b", ir.Leaf("c")),
			},
			want: `{
  "a": null,
  "b": {
    "c": null
  }
}
`,
		},
		{
			name: "empty tree",
			tree: nil,
			want: "{}\n",
		},
		{
			name: "empty group",
			tree: []*ir.Node{ir.Group("g")},
			want: `{
  "g": {}
}
`,
		},
		{
			name: "empty leaf repr",
			tree: []*ir.Node{ir.Leaf("a")},
			opts: []EncodeOption{EncodeLeafRepr(LeafEmpty)},
			want: `{
  "a": {}
}
`,
		},
		{
			name: "insertion order kept",
			tree: []*ir.Node{ir.Leaf("z"), ir.Leaf("m"), ir.Leaf("a")},
			want: `{
  "z": null,
  "m": null,
  "a": null
}
`,
		},
		{
			name: "utf8 unescaped",
			tree: []*ir.Node{ir.Leaf("imię")},
			want: `{
  "imię": null
}
`,
		},
		{
			name: "wide indent",
			tree: []*ir.Node{ir.Group("g", ir.Leaf("x"))},
			opts: []EncodeOption{Indent(4)},
			want: `{
    "g": {
        "x": null
    }
}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(tt.tree, &buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.want, buf.String()); d != "" {
				t.Errorf("json mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	tree := []*ir.Node{
		ir.Leaf("a"),
		ir.Group("b", ir.Leaf("c")),
	}
	var buf bytes.Buffer
	if err := Encode(tree, &buf, EncodeFormat(YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	ai := strings.Index(got, "a:")
	bi := strings.Index(got, "b:")
	ci := strings.Index(got, "c:")
	if ai < 0 || bi < 0 || ci < 0 || !(ai < bi && bi < ci) {
		t.Errorf("yaml order wrong:\n%s", got)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name string
		tree []*ir.Node
		want string
	}{
		{
			name: "single group",
			tree: []*ir.Node{ir.Group("g", ir.Leaf("x"), ir.Leaf("y"))},
			want: "{g:{x,y}}",
		},
		{
			name: "nested group",
			tree: []*ir.Node{ir.Group("g", ir.Leaf("x"), ir.Group("h", ir.Leaf("y")))},
			want: "{g:{x,{h:{y}}}}",
		},
		{
			name: "mixed top level",
			tree: []*ir.Node{ir.Leaf("a"), ir.Group("g", ir.Leaf("x"))},
			want: "{a,{g:{x}}}",
		},
		{
			name: "single leaf",
			tree: []*ir.Node{ir.Leaf("a")},
			want: "{a}",
		},
		{
			name: "empty group",
			tree: []*ir.Node{ir.Group("g")},
			want: "{g:{}}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.tree); got != tt.want {
				t.Errorf("Compact = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeLeaves(t *testing.T) {
	leaves := []string{"a", "b", "c"}

	var text bytes.Buffer
	if err := EncodeLeaves(leaves, &text, false); err != nil {
		t.Fatal(err)
	}
	if got, want := text.String(), "a\nb\nc\n"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}

	var js bytes.Buffer
	if err := EncodeLeaves(leaves, &js, true); err != nil {
		t.Fatal(err)
	}
	want := "[\n  \"a\",\n  \"b\",\n  \"c\"\n]\n"
	if got := js.String(); got != want {
		t.Errorf("json = %q, want %q", got, want)
	}
}

func TestEndToEnd(t *testing.T) {
	rows := []parse.Row{
		{Name: "a"},
		{Name: "b", Type: "btype"},
		{Name: ">c", Type: "string"},
	}
	tree := parse.Parse(rows, parse.WithKeySource(parse.KeySourceName))
	var buf bytes.Buffer
	if err := Encode(tree, &buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": null,
  "b": {
    "c": null
  }
}
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	tree := []*ir.Node{
		ir.Leaf("a"),
		ir.Group("b",
			ir.Leaf("c"),
			ir.Group("d", ir.Leaf("e")),
		),
	}
	rows := Rows(tree, ">")
	wantRows := []parse.Row{
		{Name: "a"},
		{Name: "b"},
		{Name: ">c"},
		{Name: ">d"},
		{Name: ">>e"},
	}
	if d := cmp.Diff(wantRows, rows); d != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(tree, parse.Parse(rows)); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}
