package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	nbt "github.com/signadot/nbt-format/go-nbt"
	"github.com/signadot/nbt-format/go-nbt/convert"
	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/format"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"

	"github.com/scott-cotton/cli"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, file string) (*tag.Compound, error) {
	var (
		c   *tag.Compound
		f   format.Format
		err error
	)
	if file == "-" {
		c, f, err = nbt.Read(cc.In, file, cfg.InFormat)
	} else {
		c, f, err = nbt.ReadFile(file, cfg.InFormat)
	}
	if err != nil {
		return nil, err
	}
	theLog.Debug("read", "file", file, "format", f, "entries", c.Len())
	return c, nil
}

// eachObjFile calls fn on every file, or on stdin when there are none.
func eachObjFile(cfg *MainConfig, cc *cli.Context, files []string, fn func(string, *tag.Compound) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		c, err := getObjFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := fn(file, c); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func writeSep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}

// output writes t in the output format, text notation by default.
func output(cfg *MainConfig, w io.Writer, t tag.Tag) error {
	f := cfg.outFormat(format.SNBTFormat)
	if f == format.SNBTFormat {
		return encode.Encode(t, w, cfg.encOpts(w)...)
	}
	d, err := convert.Marshal(t, f)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	switch {
	case f && arg == "-":
		r = cc.In
	case f:
		file, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer file.Close()
		r = file
	default:
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

func getPattern(cc *cli.Context, arg string, file bool) (*tag.Compound, error) {
	d, err := getish(false, file, cc, arg)
	if err != nil {
		return nil, err
	}
	name := ""
	if file {
		name = arg
	}
	return parse.Parse(string(d), parse.ParseFilename(name))
}
