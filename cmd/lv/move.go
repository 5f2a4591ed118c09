package main

import (
	"fmt"
	"io"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/libdiff"
	"github.com/signadot/litview/patch"

	"github.com/scott-cotton/cli"
)

func move(cfg *MoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Move.Parse(cc, args)
	if err != nil {
		cfg.Move.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: move requires a source path, a destination path and at most one file", cli.ErrUsage)
	}
	src, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: source: %w", cli.ErrUsage, err)
	}
	dst, err := ir.ParsePath(args[1])
	if err != nil {
		return fmt.Errorf("%w: destination: %w", cli.ErrUsage, err)
	}
	file := inputs(args[2:])[0]
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	return moveBytes(cfg, cc.Out, file, d, src, dst)
}

func moveBytes(cfg *MoveConfig, w io.Writer, file string, d []byte, src, dst ir.Path) error {
	doc, err := loadDoc(cfg.MainConfig, file, d)
	if err != nil {
		return err
	}
	out := cfg.outDialect(doc.Dialect)
	if cfg.JSON {
		op, err := patch.MoveOp(doc.Root(), src, dst)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", op)
		return err
	}
	before, err := doc.FormatAs(out)
	if err != nil {
		return err
	}
	if err := doc.Move(src, dst); err != nil {
		return err
	}
	if cfg.Diff {
		after, err := doc.FormatAs(out)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, libdiff.Lines(before, after))
		return err
	}
	return encode.Encode(doc.Root(), w, cfg.encOpts(w, doc.Dialect)...)
}
