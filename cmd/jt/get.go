package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	steps, err := parsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, file := range inputArgs(args[1:]) {
		y, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := walkPath(y, steps)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
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

// step is one component of a dotted path: a member name, an element
// index, or both (name followed by [i]... subscripts).
type step struct {
	key     string
	indices []int
}

func parsePath(p string) ([]step, error) {
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return nil, nil
	}
	var steps []step
	for _, part := range strings.Split(p, ".") {
		s := step{key: part}
		for {
			open := strings.LastIndexByte(s.key, '[')
			if open == -1 || !strings.HasSuffix(s.key, "]") {
				break
			}
			i, err := strconv.Atoi(s.key[open+1 : len(s.key)-1])
			if err != nil {
				return nil, fmt.Errorf("bad index in path component %q", part)
			}
			s.indices = append([]int{i}, s.indices...)
			s.key = s.key[:open]
		}
		if s.key == "" && len(s.indices) == 0 {
			return nil, fmt.Errorf("empty path component in %q", p)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func walkPath(y *ir.Node, steps []step) (*ir.Node, error) {
	for _, s := range steps {
		if s.key != "" {
			if y.Type != ir.ObjectType {
				return nil, fmt.Errorf("cannot select %q in %s value", s.key, y.Type)
			}
			next := y.Get(s.key)
			if next == nil {
				return nil, fmt.Errorf("no member %q", s.key)
			}
			y = next
		}
		for _, i := range s.indices {
			if y.Type != ir.ArrayType && y.Type != ir.ObjectType {
				return nil, fmt.Errorf("cannot index %s value", y.Type)
			}
			if i < 0 || i >= y.Len() {
				return nil, fmt.Errorf("index %d out of range (%d elements)", i, y.Len())
			}
			y = y.Index(i)
		}
	}
	return y, nil
}
