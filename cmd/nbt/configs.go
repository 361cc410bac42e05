package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=c aliases=compact desc='write text notation on one line'"`
	Verbose bool `cli:"name=v desc='log decoding to stderr'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if !cfg.Compact {
		res = append(res, encode.EncodeIndent(2))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: as set by -color,
// otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=p desc='print the diff as a json patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim    bool `cli:"name=trim desc='trim the results to the match'"`
	Ordered bool `cli:"name=ordered desc='match lists element by element'"`
	Loose   bool `cli:"name=loose desc='match numbers across kinds'"`
	Expr    bool `cli:"name=x desc='consider match an expression'"`
	File    bool `cli:"name=f desc='consider match a file path'"`
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
