package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/nbt-format/go-nbt/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		err := checkFile(cc, file)
		var pe *parse.ParseError
		switch {
		case err == nil:
			theLog.Debug("ok", "file", file)
		case errors.As(err, &pe):
			failed++
			fmt.Fprintln(cc.Out, pe.Error())
		default:
			return err
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cc *cli.Context, file string) error {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	_, err = parse.Parse(string(d), parse.ParseFilename(file))
	return err
}
