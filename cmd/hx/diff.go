package main

import (
	"fmt"
	"os"

	"github.com/hexon-format/go-hexon/encode"
	"github.com/hexon-format/go-hexon/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := render(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := render(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		fmt.Fprintln(cc.Out, dmp.PatchToText(dmp.PatchMake(a, diffs)))
	}
	return cli.ExitCodeErr(1)
}

// render translates arg to its canonical json rendering without color,
// so diffs compare content rather than terminal escapes.
func render(cfg *MainConfig, arg string) (string, error) {
	d, err := readArg(arg)
	if err != nil {
		return "", err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return "", fmt.Errorf("error translating %s: %w", arg, err)
	}
	return encode.MustString(node, encode.EscapeStrings(cfg.Escape)), nil
}
