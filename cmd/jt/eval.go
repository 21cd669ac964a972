package main

import (
	"fmt"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, file := range inputArgs(args[1:]) {
		y, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		env := map[string]any{"doc": y.Any()}
		v, err := expr.Eval(src, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, file, err)
		}
		res, err := ir.FromAny(v)
		if err != nil {
			return fmt.Errorf("result of %q on %s: %w", src, file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
