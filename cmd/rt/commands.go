package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{File: DefaultFileConfig()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, compact/c",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		},
		&cli.Opt{
			Name:        "c",
			Aliases:     []string{"config"},
			Description: "load yaml configuration file",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "markers",
			Description: "characters counted as depth markers",
			Type:        cli.NamedFuncOpt(cfg.markersOpt, "(chars)"),
		},
		&cli.Opt{
			Name:        "key",
			Description: "group key source: type, name",
			Type:        cli.NamedFuncOpt(cfg.keyOpt, "(source)"),
		},
		&cli.Opt{
			Name:        "leaf",
			Description: "leaf rendering: null, empty",
			Type:        cli.NamedFuncOpt(cfg.leafOpt, "(repr)"),
		},
		&cli.Opt{
			Name:        "sheet",
			Description: "worksheet name to read",
			Type:        cli.NamedFuncOpt(cfg.sheetOpt, "(name)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "rt").
		WithSynopsis("rt [opts] command [opts]").
		WithDescription("rt is a tool for reconstructing trees from depth-marked rows.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rtMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			LeavesCommand(cfg),
			CompactCommand(cfg),
			ViewCommand(cfg),
			ExportCommand(cfg),
			CollateCommand(cfg),
			ResolveCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p", "pa").
		WithSynopsis("parse [workbooks]").
		WithDescription("parse workbooks and render the reconstructed trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return runParse(cfg, cc, args)
		})
}

func LeavesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LeavesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("leaves").
		WithAliases("l", "le").
		WithSynopsis("leaves [-json] [-match expr] [workbooks]").
		WithDescription("list the leaf element names of reconstructed trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runLeaves(cfg, cc, args)
		})
	cfg.Leaves = cmd
	return cmd
}

func CompactCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompactConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compact, "compact").
		WithAliases("c", "co").
		WithSynopsis("compact [workbooks]").
		WithDescription("render reconstructed trees in single-line compact form").
		WithRun(func(cc *cli.Context, args []string) error {
			return runCompact(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [workbooks]").
		WithDescription("view reconstructed trees in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return runView(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x", "ex").
		WithSynopsis("export <in.xlsx> <out.xlsx>").
		WithDescription("re-export a parsed workbook as structure and leaf sheets").
		WithRun(func(cc *cli.Context, args []string) error {
			return runExport(cfg, cc, args)
		})
}

func CollateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CollateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Collate, "collate").
		WithSynopsis("collate [-prefix p] [-suffix s] <dir>").
		WithDescription("collate field list files in a directory into one json object").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runCollate(cfg, cc, args)
		})
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r", "re").
		WithSynopsis("resolve [-report out.xlsx] <basedir>").
		WithDescription("scan suite documents under a base directory and report reference resolution").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runResolve(cfg, cc, args)
		})
}
