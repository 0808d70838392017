// Package collate merges exported leaf files back into one document.
//
// Each leaf export is a plain text file named datafields_<key>.txt holding
// one identifier per line; Dir gathers every such file in a directory into
// a key-to-leaves mapping, deduplicating lines while preserving their
// first-seen order.
package collate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultPrefix = "datafields_"
	DefaultSuffix = ".txt"
)

// Set is an ordered key-to-leaves mapping. Keys follow sorted filename
// order so output is deterministic.
type Set struct {
	Keys   []string
	Fields map[string][]string
}

// Dir collects every <prefix><key><suffix> file under folder.
func Dir(folder, prefix, suffix string) (*Set, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", folder, err)
	}
	set := &Set{Fields: map[string][]string{}}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		key := strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix)
		lines, err := readLines(filepath.Join(folder, name))
		if err != nil {
			return nil, err
		}
		set.Keys = append(set.Keys, key)
		set.Fields[key] = lines
	}
	return set, nil
}

// readLines returns the non-blank lines of a leaf file, deduplicated in
// first-seen order.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := map[string]bool{}
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return lines, nil
}

// WriteJSON renders the mapping as an indented JSON object. os.ReadDir
// yields sorted names, so key order and JSON object order agree.
func (s *Set) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Fields)
}
