package main

import (
	"fmt"

	"github.com/hexon-format/go-hexon/parse"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

// get evaluates an expr-lang expression with the translated document as
// environment, e.g.
//
//	hx get 'server.port + 1' config.hexon
//
// The expression queries the translated output; the hexon language itself
// has no expressions.
func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", src, err)
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error translating %s: %w", arg, err)
		}
		env, _ := node.Interface().(map[string]any)
		res, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, arg, err)
		}
		fmt.Fprintln(cc.Out, res)
	}
	return nil
}
