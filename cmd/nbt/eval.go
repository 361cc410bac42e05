package main

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/query"
	"github.com/signadot/nbt-format/go-nbt/tag"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return err
	}
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, c *tag.Compound) error {
		t, err := q.Tag(c)
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
