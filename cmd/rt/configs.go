package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/rowtree/rowtree/encode"
	"github.com/rowtree/rowtree/parse"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='structured output in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='structured output in yaml'"`
	Color bool `cli:"name=color desc='encode with color'"`

	File      *FileConfig
	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := encode.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) configOpt(_ *cli.Context, v string) (any, error) {
	fc, err := LoadFileConfig(v)
	if err != nil {
		return nil, err
	}
	cfg.File = fc
	return fc, nil
}

func (cfg *MainConfig) markersOpt(_ *cli.Context, v string) (any, error) {
	if v == "" {
		return nil, fmt.Errorf("%w: markers must not be empty", cli.ErrUsage)
	}
	cfg.File.Markers = v
	return v, nil
}

func (cfg *MainConfig) keyOpt(_ *cli.Context, v string) (any, error) {
	if _, err := parse.ParseKeySource(v); err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.File.Key = v
	return v, nil
}

func (cfg *MainConfig) leafOpt(_ *cli.Context, v string) (any, error) {
	if _, err := encode.ParseLeafRepr(v); err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.File.Leaf = v
	return v, nil
}

func (cfg *MainConfig) sheetOpt(_ *cli.Context, v string) (any, error) {
	cfg.File.Sheet = v
	return v, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := encode.JSONFormat
	switch {
	case cfg.Y:
		fmat = encode.YAMLFormat
	case cfg.J:
		fmat = encode.JSONFormat
	default:
		// no explicit format, take a hint from the -o filename
		if f, ok := suffixFormat(cfg.Out); ok {
			fmat = f
		}
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := append([]encode.EncodeOption{encode.EncodeFormat(fmat)}, cfg.File.EncOpts()...)
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ParseConfig struct {
	*MainConfig

	Parse *cli.Command
}

type LeavesConfig struct {
	*MainConfig

	JSON  bool   `cli:"name=json desc='write leaves as a json array'"`
	Match string `cli:"name=match desc='expression filtering leaves by name and index'"`

	Leaves *cli.Command
}

type CompactConfig struct {
	*MainConfig

	Compact *cli.Command
}

type ExportConfig struct {
	*MainConfig

	Export *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CollateConfig struct {
	*MainConfig

	Prefix string `cli:"name=prefix desc='filename prefix selecting field lists'"`
	Suffix string `cli:"name=suffix desc='filename suffix selecting field lists'"`

	Collate *cli.Command
}

type ResolveConfig struct {
	*MainConfig

	Report string `cli:"name=report desc='report workbook path (default report.xlsx)'"`

	Resolve *cli.Command
}
