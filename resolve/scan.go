package resolve

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Report accumulates the outcome of a Scan: one mapping row per processed
// artifact, plus one error row per unresolved or unreadable reference.
type Report struct {
	Rows   []MappingRow
	Errors []ErrorRow
}

type MappingRow struct {
	File   string
	Suites []string
	Cases  []string
}

type ErrorRow struct {
	Parent  string
	LKPath  string
	Missing string
	Checked string
}

// Scan walks Base for suite and case files, extracts each suite's lkpath
// references, resolves them, and recurses into referenced suites. Document
// parse failures become error rows; they never abort the scan. Cancelling
// ctx stops the walk.
func (r *Resolver) Scan(ctx context.Context) (*Report, error) {
	rep := &Report{}
	visited := map[string]bool{}
	err := filepath.WalkDir(r.Base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != r.SuiteExt && ext != r.CaseExt {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), ext)
		r.processFile(rep, visited, path, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *Resolver) processFile(rep *Report, visited map[string]bool, path, name string) {
	if visited[path] {
		return
	}
	visited[path] = true
	r.Log.Info("scanning", "file", path)

	refs, err := lkpathsOf(path)
	if err != nil {
		rep.Errors = append(rep.Errors, ErrorRow{
			Parent:  name,
			LKPath:  "parse_error",
			Missing: err.Error(),
			Checked: path,
		})
		return
	}

	row := MappingRow{File: name}
	for _, ref := range refs {
		res := r.Resolve(ref)
		base := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		switch res.Kind {
		case KindSuite:
			row.Suites = append(row.Suites, base)
			r.processFile(rep, visited, res.Path, base)
		case KindCase:
			row.Cases = append(row.Cases, base)
		default:
			rep.Errors = append(rep.Errors, ErrorRow{
				Parent:  name,
				LKPath:  ref,
				Missing: res.Missing,
				Checked: res.Path,
			})
		}
	}
	rep.Rows = append(rep.Rows, row)
}

// lkpathsOf extracts the lkpath attribute of every TestItem element in an
// artifact document, in document order.
func lkpathsOf(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lkpaths(f)
}

func lkpaths(rd io.Reader) ([]string, error) {
	dec := xml.NewDecoder(rd)
	var res []string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "TestItem" {
			continue
		}
		for _, a := range se.Attr {
			if a.Name.Local == "lkpath" && a.Value != "" {
				res = append(res, a.Value)
			}
		}
	}
}
