package main

import (
	"fmt"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/encode"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var opts []encode.EncodeOption
	if cfg.Indent != "" {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	if cfg.NoCompact {
		opts = append(opts, encode.NoCompactLists())
	}
	d, err := jdoc.Diff(a, b, opts...)
	if err != nil {
		return err
	}
	if !d.Changed() {
		return nil
	}
	if err := d.Write(cc.Out, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
