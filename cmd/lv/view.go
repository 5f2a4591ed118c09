package main

import (
	"fmt"
	"io"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/treeview"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := viewBytes(cfg, cc.Out, file, d); err != nil {
			return err
		}
		if i < len(files)-1 {
			io.WriteString(cc.Out, "\n")
		}
	}
	return nil
}

func viewBytes(cfg *ViewConfig, w io.Writer, file string, d []byte) error {
	doc, err := loadDoc(cfg.MainConfig, file, d)
	if err != nil {
		return err
	}
	st := treeview.NewState(cfg.depth())
	if cfg.All {
		st.ExpandAll(doc.Root())
	}
	var opts []treeview.RenderOption
	if c := cfg.colors(w); c != nil {
		opts = append(opts, treeview.RenderColors(c))
	}
	if err := treeview.Render(w, doc.Root(), st, opts...); err != nil {
		return fmt.Errorf("error rendering %s: %w", file, err)
	}
	return nil
}

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := fmtBytes(cfg.MainConfig, cc.Out, file, d); err != nil {
			return err
		}
	}
	return nil
}

func fmtBytes(cfg *MainConfig, w io.Writer, file string, d []byte) error {
	doc, err := loadDoc(cfg, file, d)
	if err != nil {
		return err
	}
	if err := encode.Encode(doc.Root(), w, cfg.encOpts(w, doc.Dialect)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if cfg.WireOut {
		io.WriteString(w, "\n")
	}
	return nil
}
