package main

import (
	"fmt"

	"github.com/hexon-format/go-hexon/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", arg)
	}
	return nil
}
