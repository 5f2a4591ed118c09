package main

import (
	"fmt"
	"io"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range inputs(args[1:]) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := getBytes(cfg.MainConfig, cc.Out, file, d, p); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", p, file, err)
		}
	}
	return nil
}

func getBytes(cfg *MainConfig, w io.Writer, file string, d []byte, p ir.Path) error {
	doc, err := loadDoc(cfg, file, d)
	if err != nil {
		return err
	}
	node, err := doc.Resolve(p)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, cfg.encOpts(w, doc.Dialect)...)
}
