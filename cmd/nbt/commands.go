package main

import (
	"github.com/scott-cotton/cli"
)

const formats = "nbt/n, raw/r, snbt/s, json/j, yaml/y, cbor/c, plain/pj"

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: nbt/n, raw/r, snbt/s, json/j (default: detect)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: " + formats,
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nbt").
		WithSynopsis("nbt [opts] command [opts]").
		WithDescription("nbt is a tool for working with named binary tag documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			MatchCommand(cfg),
			CheckCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view documents in text notation, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [file]").
		WithDescription("convert a document to the output format, gzipped nbt by default").
		WithRun(func(cc *cli.Context, args []string) error {
			return convertDoc(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get tags at a path such as $.Data.Player.Inventory[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

const evalDescription = `evaluate an expression against documents.

Top level entries are variables, so 'Data.LevelName' reads a level name.
The functions getpath, haspath and kind take a path:

  nbt eval 'kind("$.Data.Time")' level.dat`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-p] a b").
		WithDescription("diff documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <json-patch> file").
		WithDescription("apply an RFC 6902 json patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchDoc(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <pattern> [files]").
		WithDescription("print documents matching a pattern in text notation or, with -x, an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("ck").
		WithSynopsis("check [files]").
		WithDescription("check text notation files, printing each error as file:line:column: message").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
