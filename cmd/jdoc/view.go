package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		v, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := cfg.output(cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}
