package main

import (
	"fmt"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/parse"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires <patch> <file>, got %v", cli.ErrUsage, args)
	}
	var pd []byte
	if cfg.String {
		pd = []byte(args[0])
	} else {
		pd, err = readFileOrStdin(cc, args[0])
		if err != nil {
			return err
		}
	}
	// the patch goes through a parse round trip so patch errors carry
	// positions and comments in patch files are tolerated via jt min
	py, err := parse.Parse(pd, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	pc, err := encode.Print(py)
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(pc)
	if err != nil {
		return fmt.Errorf("error decoding patch ops: %w", err)
	}

	target, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	td, err := encode.Print(target)
	if err != nil {
		return err
	}
	out, err := ops.Apply(td)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	res, err := parse.Parse(out, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch result: %w", err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
