package main

import (
	"fmt"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range inputArgs(args) {
		if cfg.Reverse {
			err = jsonToYAML(cfg, cc, file)
		} else {
			err = yamlToJSON(cfg, cc, file)
		}
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

func yamlToJSON(cfg *ConvertConfig, cc *cli.Context, file string) error {
	d, err := readFileOrStdin(cc, file)
	if err != nil {
		return err
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return err
	}
	y, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

func jsonToYAML(cfg *ConvertConfig, cc *cli.Context, file string) error {
	y, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(y.Any())
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
