package main

import (
	"github.com/signadot/nbt-format/go-nbt/tag"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args, func(_ string, c *tag.Compound) error {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		i++
		return output(cfg.MainConfig, cc.Out, c)
	})
}
