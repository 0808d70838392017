package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/rowtree/rowtree/collate"
)

func runCollate(cfg *CollateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Collate.Parse(cc, args)
	if err != nil {
		cfg.Collate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: collate requires one argument, a directory", cli.ErrUsage)
	}
	prefix, suffix := cfg.Prefix, cfg.Suffix
	if prefix == "" {
		prefix = collate.DefaultPrefix
	}
	if suffix == "" {
		suffix = collate.DefaultSuffix
	}
	set, err := collate.Dir(args[0], prefix, suffix)
	if err != nil {
		return err
	}
	return set.WriteJSON(cc.Out)
}
