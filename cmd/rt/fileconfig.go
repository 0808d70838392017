package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/rowtree/rowtree/encode"
	"github.com/rowtree/rowtree/parse"
	"github.com/rowtree/rowtree/sheet"
	"github.com/rowtree/rowtree/token"
)

// FileConfig is the yaml configuration file structure.  Zero values defer
// to package defaults, so a partial config only overrides what it names.
type FileConfig struct {
	// Markers lists the characters counted as depth markers.
	Markers string `yaml:"markers"`

	// Key selects the group key source: "type" or "name".
	Key string `yaml:"key"`

	// Leaf selects leaf rendering: "null" or "empty".
	Leaf string `yaml:"leaf"`

	// Sheet names the worksheet read from input workbooks.
	Sheet string `yaml:"sheet"`

	// HeaderRows is the number of leading rows skipped on read.
	HeaderRows *int `yaml:"headerRows"`

	// NameColumn and TypeColumn are 0-based column indices.
	NameColumn *int `yaml:"nameColumn"`
	TypeColumn *int `yaml:"typeColumn"`

	// SuiteExt and CaseExt are the document extensions probed when
	// resolving references.
	SuiteExt string `yaml:"suiteExt"`
	CaseExt  string `yaml:"caseExt"`
}

// LoadFileConfig loads and validates a yaml configuration file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultFileConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// DefaultFileConfig returns a FileConfig deferring everything to package
// defaults.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{}
}

// Validate checks the configuration for errors.
func (c *FileConfig) Validate() error {
	if c.Key != "" {
		if _, err := parse.ParseKeySource(c.Key); err != nil {
			return err
		}
	}
	if c.Leaf != "" {
		if _, err := encode.ParseLeafRepr(c.Leaf); err != nil {
			return err
		}
	}
	if c.HeaderRows != nil && *c.HeaderRows < 0 {
		return fmt.Errorf("headerRows must be >= 0, got %d", *c.HeaderRows)
	}
	if c.NameColumn != nil && *c.NameColumn < 0 {
		return fmt.Errorf("nameColumn must be >= 0, got %d", *c.NameColumn)
	}
	if c.TypeColumn != nil && *c.TypeColumn < 0 {
		return fmt.Errorf("typeColumn must be >= 0, got %d", *c.TypeColumn)
	}
	return nil
}

// ParseOpts translates the configuration into parse options.
func (c *FileConfig) ParseOpts() []parse.Option {
	var res []parse.Option
	if c.Markers != "" {
		res = append(res, parse.WithMarkers(token.Markers(c.Markers)))
	}
	if c.Key != "" {
		ks, _ := parse.ParseKeySource(c.Key)
		res = append(res, parse.WithKeySource(ks))
	}
	return res
}

// SheetOpts translates the configuration into workbook read options.
func (c *FileConfig) SheetOpts() []sheet.Option {
	var res []sheet.Option
	if c.Sheet != "" {
		res = append(res, sheet.Sheet(c.Sheet))
	}
	if c.HeaderRows != nil {
		res = append(res, sheet.HeaderRows(*c.HeaderRows))
	}
	if c.NameColumn != nil || c.TypeColumn != nil {
		name, typ := sheet.DefaultNameCol, sheet.DefaultTypeCol
		if c.NameColumn != nil {
			name = *c.NameColumn
		}
		if c.TypeColumn != nil {
			typ = *c.TypeColumn
		}
		res = append(res, sheet.Columns(name, typ))
	}
	if c.Markers != "" {
		// WriteTree indents with a single marker, use the first one.
		res = append(res, sheet.Marker(c.Markers[:1]))
	}
	return res
}

// EncOpts translates the configuration into encoding options.
func (c *FileConfig) EncOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if c.Leaf != "" {
		lr, _ := encode.ParseLeafRepr(c.Leaf)
		res = append(res, encode.EncodeLeafRepr(lr))
	}
	return res
}
