package main

import (
	"fmt"

	nbt "github.com/signadot/nbt-format/go-nbt"
	"github.com/signadot/nbt-format/go-nbt/query"
	"github.com/signadot/nbt-format/go-nbt/tag"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	if cfg.Expr && (cfg.File || cfg.Trim) {
		return fmt.Errorf("%w: -x cannot be combined with -f or -trim", cli.ErrUsage)
	}
	matches, err := matcher(cfg, cc, args[0])
	if err != nil {
		return err
	}
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, c *tag.Compound) error {
		m, res, err := matches(c)
		if err != nil || !m {
			return err
		}
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		i++
		return output(cfg.MainConfig, cc.Out, res)
	})
}

func matcher(cfg *MatchConfig, cc *cli.Context, arg string) (func(*tag.Compound) (bool, tag.Tag, error), error) {
	if cfg.Expr {
		q, err := query.CompileBool(arg)
		if err != nil {
			return nil, err
		}
		return func(c *tag.Compound) (bool, tag.Tag, error) {
			res, err := q.Run(c)
			if err != nil {
				return false, nil, err
			}
			b, _ := res.(bool)
			return b, c, nil
		}, nil
	}
	pattern, err := getPattern(cc, arg, cfg.File)
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	opts := []nbt.MatchOpt{nbt.MatchOrderedLists(cfg.Ordered), nbt.MatchLooseNumbers(cfg.Loose)}
	return func(c *tag.Compound) (bool, tag.Tag, error) {
		m, err := nbt.Match(c, pattern, opts...)
		if err != nil || !m {
			return false, nil, err
		}
		if cfg.Trim {
			return true, nbt.Trim(pattern, c, opts...), nil
		}
		return true, c, nil
	}, nil
}
