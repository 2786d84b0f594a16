package main

import (
	"fmt"
	"io"

	"github.com/hexon-format/go-hexon/encode"
	"github.com/hexon-format/go-hexon/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := viewArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func viewArg(cfg *ViewConfig, w io.Writer, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error translating %s: %w", arg, err)
	}
	opts := append(cfg.encOpts(w), encode.EncodeColors(encode.NewColors()))
	if err := encode.Encode(node, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
