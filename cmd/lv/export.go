package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/litview/format"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: export takes at most one file, got %v", cli.ErrUsage, args)
	}
	file := inputs(args)[0]
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	return exportBytes(cfg, cc.Out, file, d)
}

// exportBytes exports d in cfg.Format. With -w the artifact is written
// into that directory and its path printed; otherwise the text goes to w.
func exportBytes(cfg *ExportConfig, w io.Writer, file string, d []byte) error {
	f := format.ParseExportFormat(cfg.Format)
	doc, err := loadDoc(cfg.MainConfig, file, d)
	if err != nil {
		return err
	}
	text, filename, err := doc.Export(f)
	if err != nil {
		return fmt.Errorf("error exporting %s: %w", file, err)
	}
	if cfg.Dir == "" {
		_, err = fmt.Fprintln(w, text)
		return err
	}
	p := filepath.Join(cfg.Dir, filename)
	if err := os.WriteFile(p, []byte(text+"\n"), 0644); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, p)
	return err
}
