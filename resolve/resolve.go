// Package resolve classifies artifact references against a base directory.
//
// Suite definitions reference other artifacts through slash-separated
// lkpath attributes. A reference resolves to either a suite file (which may
// itself be scanned for further references) or a case file; anything else
// is a miss reporting which segment broke the chain.
package resolve

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rowtree/rowtree/debug"
)

type Kind int

const (
	KindMissing Kind = iota
	KindSuite
	KindCase
)

func (k Kind) String() string {
	switch k {
	case KindSuite:
		return "suite"
	case KindCase:
		return "case"
	case KindMissing:
		return "missing"
	}
	return "<unknown kind>"
}

const (
	DefaultSuiteExt = ".gts"
	DefaultCaseExt  = ".tsq"
)

type Resolver struct {
	Base     string
	SuiteExt string
	CaseExt  string
	Log      *slog.Logger
}

func New(base string) *Resolver {
	return &Resolver{
		Base:     base,
		SuiteExt: DefaultSuiteExt,
		CaseExt:  DefaultCaseExt,
		Log:      slog.Default(),
	}
}

// Resolution is the outcome of resolving one lkpath.
type Resolution struct {
	Path    string
	Kind    Kind
	Missing string
}

// Resolve locates an lkpath under Base by probing progressively longer
// prefixes and keeping the deepest one that exists, then classifying the
// final segment by extension probe.
func (r *Resolver) Resolve(lkpath string) Resolution {
	parts := strings.Split(lkpath, "/")
	last := parts[len(parts)-1]

	foundBase := ""
	for i := range parts {
		p := filepath.Join(append([]string{r.Base}, parts[:i+1]...)...)
		if exists(p) {
			foundBase = p
		}
	}
	if foundBase == "" {
		return Resolution{
			Path:    filepath.Join(r.Base, filepath.FromSlash(lkpath)),
			Kind:    KindMissing,
			Missing: last,
		}
	}

	candidate := filepath.Join(foundBase, last)
	if debug.Resolve() {
		debug.Logf("resolve %q: base %q candidate %q", lkpath, foundBase, candidate)
	}
	switch {
	case exists(candidate + r.SuiteExt):
		return Resolution{Path: candidate + r.SuiteExt, Kind: KindSuite}
	case exists(candidate + r.CaseExt):
		return Resolution{Path: candidate + r.CaseExt, Kind: KindCase}
	default:
		return Resolution{Path: candidate, Kind: KindMissing, Missing: last}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
