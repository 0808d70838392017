package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scott-cotton/cli"

	"github.com/rowtree/rowtree/report"
	"github.com/rowtree/rowtree/resolve"
)

func runResolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: resolve requires one argument, a base directory", cli.ErrUsage)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	r := resolve.New(args[0])
	r.Log = theLog
	if cfg.File.SuiteExt != "" {
		r.SuiteExt = cfg.File.SuiteExt
	}
	if cfg.File.CaseExt != "" {
		r.CaseExt = cfg.File.CaseExt
	}
	rep, err := r.Scan(ctx)
	if err != nil {
		return err
	}
	out := cfg.Report
	if out == "" {
		out = "report.xlsx"
	}
	if err := report.Write(out, rep); err != nil {
		return fmt.Errorf("error writing %s: %w", out, err)
	}
	theLog.Info("report written", "file", out, "documents", len(rep.Rows), "errors", len(rep.Errors))
	return nil
}
