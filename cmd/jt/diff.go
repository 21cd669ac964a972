package main

import (
	"fmt"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		y1, y2 = y2, y1
	}
	differs, err := diffNodes(cfg, cc, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffNodes diffs the canonical human-readable renderings, so key order
// and insignificant whitespace of the inputs do not show up as changes.
func diffNodes(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	da, err := encode.Print(a, encode.Pretty(true))
	if err != nil {
		return false, err
	}
	db, err := encode.Print(b, encode.Pretty(true))
	if err != nil {
		return false, err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(da), string(db), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	out := dmp.DiffPrettyText(diffs)
	if !colorOut(cfg.MainConfig, cc.Out) {
		patches := dmp.PatchMake(string(da), diffs)
		out = dmp.PatchToText(patches)
	}
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return false, err
	}
	return true, nil
}
