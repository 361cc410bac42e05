package main

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/patch"

	"github.com/scott-cotton/cli"
)

func patchDoc(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch, and a file to which to apply it", cli.ErrUsage)
	}
	d, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	ops, err := patch.Decode(d)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := patch.ApplyOps(target, ops)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return output(cfg.MainConfig, cc.Out, res)
}
