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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "hx").
		WithSynopsis("hx [opts] command [opts]").
		WithDescription("hx translates hexon configuration files to json.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hxMain(cfg, cc, args)
		}).
		WithSubs(
			TranslateCommand(cfg),
			CheckCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			SelftestCommand(cfg))
}

func TranslateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TranslateConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("translate").
		WithAliases("t", "tr").
		WithSynopsis("translate [files]").
		WithDescription("translate hexon files (or stdin) to json").
		WithRun(func(cc *cli.Context, args []string) error {
			return translate(cfg, cc, args)
		})
	cfg.Translate = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("parse hexon files and report the first error, if any").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view translated files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <expr> [files]").
		WithDescription("evaluate an expression against translated documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the json renderings of two hexon files").
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
		WithSynopsis("patch -p <patchfile> [file]").
		WithDescription("apply a json patch (rfc 6902) or merge patch (rfc 7386) to translated output").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func SelftestCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelftestConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("selftest").
		WithSynopsis("selftest").
		WithDescription("run the embedded translation checks").
		WithRun(func(cc *cli.Context, args []string) error {
			return selftest(cfg, cc, args)
		})
	cfg.Selftest = cmd
	return cmd
}
