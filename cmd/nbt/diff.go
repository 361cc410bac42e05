package main

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/libdiff"
	"github.com/signadot/nbt-format/go-nbt/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	cs := libdiff.Diff(a, b)
	if len(cs) == 0 {
		return nil
	}
	if cfg.Reverse {
		cs = libdiff.Reverse(cs)
	}
	if cfg.Patch {
		ops, err := patch.FromChanges(cs)
		if err != nil {
			return err
		}
		d, err := json.MarshalIndent(ops, "", "  ")
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	} else {
		if err := libdiff.Format(cc.Out, cs, libdiff.FormatColor(cfg.useColor(cc.Out))); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
