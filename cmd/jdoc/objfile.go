package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (ir.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return res, nil
}

// getObject reads an object document.
func getObject(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Object, error) {
	v, err := getObjFile(cc, path, opts...)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*ir.Object)
	if !ok {
		return nil, fmt.Errorf("%s: expected an object, got %s", path, v.Type())
	}
	return obj, nil
}

// getArg reads a document given on the command line, either inline when
// s is set or as a file name.
func getArg(s bool, cc *cli.Context, arg string, opts []parse.ParseOption) (ir.Value, error) {
	if !s {
		return getObjFile(cc, arg, opts...)
	}
	res, err := parse.Parse([]byte(arg), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return res, nil
}

// valueArg parses a single JSON value such as 1, "x" or {"a": true}.
func valueArg(arg string) (ir.Value, error) {
	l, err := parse.ParseList([]byte("[" + arg + "]"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid value %q: %w", cli.ErrUsage, arg, err)
	}
	if l.Len() != 1 {
		return nil, fmt.Errorf("%w: expected one value, got %d in %q", cli.ErrUsage, l.Len(), arg)
	}
	return l.At(0), nil
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func (cfg *MainConfig) output(w io.Writer, v ir.Value) error {
	if err := jdoc.Write(v, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func checkPath(path string) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") || strings.Contains(path, "..") {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, path)
	}
	return nil
}
