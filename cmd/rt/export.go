package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/rowtree/rowtree/ir"
	"github.com/rowtree/rowtree/parse"
	"github.com/rowtree/rowtree/sheet"
)

func runExport(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: export requires <in.xlsx> <out.xlsx>", cli.ErrUsage)
	}
	in, out := args[0], args[1]
	rows, err := sheet.Read(in, cfg.File.SheetOpts()...)
	if err != nil {
		return err
	}
	tree := parse.Parse(rows, cfg.File.ParseOpts()...)
	if err := sheet.WriteTree(out, tree, ir.Leaves(tree), cfg.File.SheetOpts()...); err != nil {
		return fmt.Errorf("error writing %s: %w", out, err)
	}
	theLog.Info("exported", "from", in, "to", out)
	return nil
}
