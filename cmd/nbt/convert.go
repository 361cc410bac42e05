package main

import (
	"fmt"

	"github.com/signadot/nbt-format/go-nbt/convert"
	"github.com/signadot/nbt-format/go-nbt/format"

	"github.com/scott-cotton/cli"
)

func convertDoc(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file, got %d", cli.ErrUsage, len(args))
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	c, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	f := cfg.outFormat(format.NBTFormat)
	if f.IsBinary() && cfg.Out == "" && isTerminal(cc.Out) {
		return fmt.Errorf("%w: refusing to write %s to a terminal, use -o", cli.ErrUsage, f)
	}
	d, err := convert.Marshal(c, f)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", f, err)
	}
	theLog.Debug("convert", "file", file, "format", f, "bytes", len(d))
	_, err = cc.Out.Write(d)
	return err
}
