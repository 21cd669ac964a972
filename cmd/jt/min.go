package main

import (
	"fmt"

	"github.com/signadot/jsontree/token"

	"github.com/scott-cotton/cli"
)

func minify(cfg *MinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Min.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputArgs(args) {
		d, err := readFileOrStdin(cc, file)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(token.Minify(d)); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
