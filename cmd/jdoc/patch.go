package main

import (
	"fmt"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch and an optional file to which to apply it", cli.ErrUsage)
	}
	p, err := getArg(cfg.String, cc, args[0], cfg.parseOpts())
	if err != nil {
		return err
	}
	ops, ok := p.(*ir.List)
	if !ok {
		return fmt.Errorf("%w: a JSON patch is a list of operations, got %s", cli.ErrUsage, p.Type())
	}
	target, err := getObjFile(cc, fileArg(args[1:]), cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res, err := jdoc.JSONPatch(target, ops)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", fileArg(args[1:]), err)
	}
	return cfg.output(cc.Out, res)
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Create {
		if len(args) != 2 {
			return fmt.Errorf("%w: merge -create requires 2 files", cli.ErrUsage)
		}
		from, err := getObjFile(cc, args[0], cfg.parseOpts()...)
		if err != nil {
			return err
		}
		to, err := getObjFile(cc, args[1], cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := jdoc.CreateMergePatch(from, to)
		if err != nil {
			return err
		}
		return cfg.output(cc.Out, res)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: merge requires a patch and an optional file to which to apply it", cli.ErrUsage)
	}
	p, err := getArg(cfg.String, cc, args[0], cfg.parseOpts())
	if err != nil {
		return err
	}
	target, err := getObjFile(cc, fileArg(args[1:]), cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res, err := jdoc.MergePatch(target, p)
	if err != nil {
		return fmt.Errorf("error merging into %s: %w", fileArg(args[1:]), err)
	}
	return cfg.output(cc.Out, res)
}
