package main

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/tag"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	p, err := tag.ParsePath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, c *tag.Compound) error {
		t, err := p.Get(c)
		if err != nil {
			return err
		}
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		i++
		return output(cfg.MainConfig, cc.Out, t)
	})
}
