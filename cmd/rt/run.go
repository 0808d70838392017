package main

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/rowtree/rowtree/encode"
	"github.com/rowtree/rowtree/ir"
	"github.com/rowtree/rowtree/parse"
	"github.com/rowtree/rowtree/sheet"
)

func runParse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		cfg.Parse.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: parse requires workbook arguments", cli.ErrUsage)
	}
	return eachWorkbook(cfg.MainConfig, args, func(tree []*ir.Node) error {
		return encode.Encode(tree, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

func runCompact(cfg *CompactConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compact.Parse(cc, args)
	if err != nil {
		cfg.Compact.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: compact requires workbook arguments", cli.ErrUsage)
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(encode.CompactFormat))
	return eachWorkbook(cfg.MainConfig, args, func(tree []*ir.Node) error {
		return encode.Encode(tree, cc.Out, opts...)
	})
}

func runView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires workbook arguments", cli.ErrUsage)
	}
	cfg.Color = true
	return eachWorkbook(cfg.MainConfig, args, func(tree []*ir.Node) error {
		return encode.Encode(tree, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

func runLeaves(cfg *LeavesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Leaves.Parse(cc, args)
	if err != nil {
		cfg.Leaves.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: leaves requires workbook arguments", cli.ErrUsage)
	}
	return eachWorkbook(cfg.MainConfig, args, func(tree []*ir.Node) error {
		leaves := ir.Leaves(tree)
		if cfg.Match != "" {
			leaves, err = matchLeaves(leaves, cfg.Match)
			if err != nil {
				return err
			}
		}
		return encode.EncodeLeaves(leaves, cc.Out, cfg.JSON)
	})
}

// matchLeaves keeps the leaves for which the expression evaluates to true.
// The expression sees "name", the leaf element name, and "index", its
// position in document order.
func matchLeaves(leaves []string, src string) ([]string, error) {
	prg, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling match %q: %w", src, err)
	}
	var res []string
	for i, name := range leaves {
		out, err := expr.Run(prg, map[string]any{"name": name, "index": i})
		if err != nil {
			return nil, fmt.Errorf("error matching %q: %w", name, err)
		}
		if out.(bool) {
			res = append(res, name)
		}
	}
	return res, nil
}

// eachWorkbook reads and parses every workbook argument, calling fn with the
// reconstructed tree.  A failing workbook is logged and does not stop the
// rest of the batch.
func eachWorkbook(cfg *MainConfig, args []string, fn func(tree []*ir.Node) error) error {
	var errs []error
	for _, arg := range args {
		if err := oneWorkbook(cfg, arg, fn); err != nil {
			theLog.Error("workbook failed", "file", arg, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", arg, err))
		}
	}
	return errors.Join(errs...)
}

func oneWorkbook(cfg *MainConfig, arg string, fn func(tree []*ir.Node) error) error {
	rows, err := sheet.Read(arg, cfg.File.SheetOpts()...)
	if err != nil {
		return err
	}
	return fn(parse.Parse(rows, cfg.File.ParseOpts()...))
}
