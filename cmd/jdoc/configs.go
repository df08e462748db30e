package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool   `cli:"name=color desc='encode with color'"`
	WireOut   bool   `cli:"name=wire desc='output in compact format'"`
	NoCompact bool   `cli:"name=nocompact desc='write one list element per line'"`
	Indent    string `cli:"name=indent desc='indentation unit (default tab)'"`
	MaxDepth  int    `cli:"name=depth desc='maximum nesting depth of input'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.MaxDepth <= 0 {
		return nil
	}
	return []parse.ParseOption{parse.MaxDepth(cfg.MaxDepth)}
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.PrettyFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent != "" {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.NoCompact {
		res = append(res, encode.NoCompactLists())
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: when -color is given,
// or when it is not and w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='take the value as a string'"`
	Set    *cli.Command
}

type CommentConfig struct {
	*MainConfig
	Delete  bool `cli:"name=d desc='remove the comment'"`
	Comment *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Patch  *cli.Command
}

type MergeConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Create bool `cli:"name=create desc='print the merge patch from the first file to the second'"`
	Merge  *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expand bool `cli:"name=x desc='expand expressions in the documents instead'"`
	Eval   *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}
