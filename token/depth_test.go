package token

import "testing"

func TestDepth(t *testing.T) {
	tests := []struct {
		in    string
		depth int
	}{
		{"", 0},
		{"   ", 0},
		{"name", 0},
		{">name", 1},
		{">>name", 2},
		{">>>ns:name", 3},
		{"  >> name", 2},
		{"//name", 2},
		{">/name", 2},
		{"name>tail", 0},
	}
	for _, tt := range tests {
		if got := DefaultMarkers.Depth(tt.in); got != tt.depth {
			t.Errorf("Depth(%q) = %d, want %d", tt.in, got, tt.depth)
		}
	}
}

func TestDepthCustomMarkers(t *testing.T) {
	m := Markers("*")
	if got := m.Depth("**x"); got != 2 {
		t.Errorf("Depth(**x) = %d, want 2", got)
	}
	if got := m.Depth(">>x"); got != 0 {
		t.Errorf("Depth(>>x) = %d, want 0", got)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Name", "name"},
		{">> AcctId", "acctid"},
		{">ns:AcctId", "acctid"},
		{"a:b:Last", "last"},
		{">>> ns: Spaced ", "spaced"},
		{">>", ""},
	}
	for _, tt := range tests {
		if got := DefaultMarkers.Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
