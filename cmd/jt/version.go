package main

import (
	"fmt"

	"github.com/signadot/jsontree"

	"github.com/scott-cotton/cli"
)

func versionRun(cc *cli.Context) error {
	_, err := fmt.Fprintln(cc.Out, jsontree.Version())
	return err
}
