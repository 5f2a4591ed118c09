package main

import (
	"fmt"
	"io"

	"github.com/signadot/litview"
	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
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
	var docs [2]*litview.Document
	for i, file := range args {
		docs[i], err = getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
	}
	differs, err := diffDocs(cfg, cc.Out, docs[0], docs[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffDocs(cfg *DiffConfig, w io.Writer, a, b *litview.Document) (bool, error) {
	colors := cfg.colors(w)
	paint := func(k libdiff.Kind, s string) string {
		if colors == nil {
			return s
		}
		switch k {
		case libdiff.Insert:
			return color.GreenString("%s", s)
		case libdiff.Delete:
			return color.RedString("%s", s)
		}
		return color.YellowString("%s", s)
	}
	if cfg.Lines {
		out := cfg.outDialect(a.Dialect)
		at, err := encode.String(a.Root(), encode.EncodeDialect(out))
		if err != nil {
			return false, err
		}
		bt, err := encode.String(b.Root(), encode.EncodeDialect(out))
		if err != nil {
			return false, err
		}
		lines := libdiff.Lines(at, bt)
		_, err = io.WriteString(w, lines)
		return lines != "", err
	}
	changes := libdiff.Diff(a.Root(), b.Root())
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, paint(c.Kind, c.String())); err != nil {
			return false, err
		}
	}
	return len(changes) != 0, nil
}
