package main

import (
	"fmt"
	"io"

	"github.com/hexon-format/go-hexon/encode"
	"github.com/hexon-format/go-hexon/parse"

	"github.com/scott-cotton/cli"
)

func translate(cfg *TranslateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Translate.Parse(cc, args)
	if err != nil {
		cfg.Translate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := translateArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func translateArg(cfg *MainConfig, w io.Writer, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error translating %s: %w", arg, err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	if cfg.outFmt().IsJSON() {
		// Encode appends no trailing newline in json mode
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
