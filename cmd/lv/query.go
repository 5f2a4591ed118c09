package main

import (
	"fmt"
	"io"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/eval"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/patch"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	for _, file := range inputs(args[1:]) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := queryBytes(cfg.MainConfig, cc.Out, file, d, args[0]); err != nil {
			return err
		}
	}
	return nil
}

func queryBytes(cfg *MainConfig, w io.Writer, file string, d []byte, expr string) error {
	doc, err := loadDoc(cfg, file, d)
	if err != nil {
		return err
	}
	res, err := eval.Query(doc.Root(), expr)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return encode.Encode(res, w, cfg.encOpts(w, doc.Dialect)...)
}

func applyPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	p, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	file := inputs(args[1:])[0]
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	return patchBytes(cfg.MainConfig, cc.Out, file, d, p)
}

func patchBytes(cfg *MainConfig, w io.Writer, file string, d, p []byte) error {
	doc, err := loadDoc(cfg, file, d)
	if err != nil {
		return err
	}
	res, err := patch.Apply(doc.Root(), p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return encode.Encode(res, w, cfg.encOpts(w, doc.Dialect)...)
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := dumpBytes(cfg.MainConfig, cc.Out, file, d); err != nil {
			return err
		}
	}
	return nil
}

func dumpBytes(cfg *MainConfig, w io.Writer, file string, d []byte) error {
	doc, err := loadDoc(cfg, file, d)
	if err != nil {
		return err
	}
	j, err := ir.ToJSON(doc.Root())
	if err != nil {
		return fmt.Errorf("error dumping %s: %w", file, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", j)
	return err
}
