package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jdoc/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func jdocEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, file := range args {
			doc, err := getObjFile(cc, file, cfg.parseOpts()...)
			if err != nil {
				return err
			}
			res, err := eval.Expand(doc, cfg.Env)
			if err != nil {
				return fmt.Errorf("error expanding %s: %w", file, err)
			}
			if err := cfg.output(cc.Out, res); err != nil {
				return err
			}
		}
		return nil
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: eval requires an expression and an optional file", cli.ErrUsage)
	}
	doc, err := getObjFile(cc, fileArg(args[1:]), cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res, err := eval.Eval(args[0], doc, cfg.Env)
	if err != nil {
		return err
	}
	return cfg.output(cc.Out, res)
}

// envFunc sets the dotted key of a "key=val" argument in env. The value is
// read as YAML so that plain words are strings.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
