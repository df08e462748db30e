package main

import (
	"fmt"

	"github.com/signadot/jdoc/dotpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if err := checkPath(path); err != nil {
		return err
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		obj, err := getObject(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		v, err := dotpath.New(obj).Get(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if err := cfg.output(cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}
