package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hexon-format/go-hexon/encode"
	"github.com/hexon-format/go-hexon/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", cfg.PatchFile, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
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
		// patching needs valid json, so strings are escaped here
		// regardless of -escape
		doc := []byte(encode.MustString(node, encode.EscapeStrings(true)))
		res, err := applyPatch(doc, pd)
		if err != nil {
			return fmt.Errorf("error patching %s with %s: %w", arg, cfg.PatchFile, err)
		}
		if _, err := cc.Out.Write(append(res, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// applyPatch applies a json patch (rfc 6902, an array) or a merge patch
// (rfc 7386, an object), distinguished by the patch document's first
// non-space byte.
func applyPatch(doc, pd []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(pd)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		p, err := jsonpatch.DecodePatch(trimmed)
		if err != nil {
			return nil, err
		}
		return p.Apply(doc)
	}
	return jsonpatch.MergePatch(doc, trimmed)
}
