package main

import (
	"github.com/scott-cotton/cli"
)

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
			Name:        "d",
			Aliases:     []string{"dialect"},
			Description: "input dialect: json/j, javascript/js, python/py",
			Type:        cli.NamedFuncOpt(cfg.dialectFunc(&cfg.InDialect), "(dialect)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"odialect"},
			Description: "output dialect: json/j, javascript/js, python/py",
			Type:        cli.NamedFuncOpt(cfg.dialectFunc(&cfg.OutDialect), "(dialect)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "lv").
		WithSynopsis("lv [opts] command [opts]").
		WithDescription("lv views and edits json, object literal and dict literal documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lvMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			ExportCommand(cfg),
			GetCommand(cfg),
			MoveCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg),
			DumpCommand(cfg),
			SampleCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-depth n] [-all] [files]").
		WithDescription("render documents as a collapsible tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("pretty print documents in the output dialect").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDocs(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg, Format: "json"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithOpts(opts...).
		WithSynopsis("export [-f json|js|python] [-w dir] [file]").
		WithDescription("export a document as data.json, data.js or data.py").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the value at a path, e.g. users[0].name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func MoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MoveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Move, "move").
		WithAliases("mv").
		WithOpts(opts...).
		WithSynopsis("move [-diff] [-jsonpatch] <src> <dst> [file]").
		WithDescription("move the node at src into the array or object at dst").
		WithRun(func(cc *cli.Context, args []string) error {
			return move(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-lines] <file1> <file2>").
		WithDescription("show the differences between two documents, exiting 1 if any").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("evaluate an expression over documents bound to doc").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [file]").
		WithDescription("apply an RFC 6902 JSON Patch to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return applyPatch(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("print the parsed representation of documents as json").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func SampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SampleConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sample, "sample").
		WithSynopsis("sample").
		WithDescription("print the sample document of the input dialect").
		WithRun(func(cc *cli.Context, args []string) error {
			return sample(cfg, cc, args)
		})
}
