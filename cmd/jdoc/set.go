package main

import (
	"fmt"

	"github.com/signadot/jdoc/dotpath"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and an optional file", cli.ErrUsage)
	}
	path := args[0]
	if err := checkPath(path); err != nil {
		return err
	}
	var v ir.Value = ir.String(args[1])
	if !cfg.String {
		v, err = valueArg(args[1])
		if err != nil {
			return err
		}
	}
	obj, err := getObject(cc, fileArg(args[2:]), cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if err := dotpath.New(obj).Put(path, v); err != nil {
		return fmt.Errorf("error setting %s: %w", path, err)
	}
	return cfg.output(cc.Out, obj)
}

func comment(cfg *CommentConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Comment.Parse(cc, args)
	if err != nil {
		return err
	}
	nArgs := 2
	if cfg.Delete {
		nArgs = 1
	}
	if len(args) < nArgs || len(args) > nArgs+1 {
		return fmt.Errorf("%w: comment requires a path, a text unless -d is given, and an optional file", cli.ErrUsage)
	}
	path := args[0]
	if err := checkPath(path); err != nil {
		return err
	}
	obj, err := getObject(cc, fileArg(args[nArgs:]), cfg.parseOpts()...)
	if err != nil {
		return err
	}
	nav := dotpath.New(obj)
	if cfg.Delete {
		nav.RemoveComment(path)
	} else if err := nav.SetComment(path, " "+args[1]); err != nil {
		return fmt.Errorf("error commenting %s: %w", path, err)
	}
	return cfg.output(cc.Out, obj)
}
