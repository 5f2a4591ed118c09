package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	InDialect, OutDialect *format.Dialect

	// File holds defaults read from the config file.
	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) dialectFunc(dp **format.Dialect) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		d, err := format.ParseDialect(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*dp = &d
		return d, nil
	})
}

// inDialect picks the dialect for reading file: -d, then the file suffix,
// then the config file, then json.
func (cfg *MainConfig) inDialect(file string) format.Dialect {
	if cfg.InDialect != nil {
		return *cfg.InDialect
	}
	if d, ok := format.DialectForSuffix(filepath.Ext(file)); ok {
		return d
	}
	if cfg.File != nil && cfg.File.dialect != nil {
		return *cfg.File.dialect
	}
	return format.JSONDialect
}

// outDialect picks the output dialect: -O, then the config file, then
// the input dialect.
func (cfg *MainConfig) outDialect(in format.Dialect) format.Dialect {
	if cfg.OutDialect != nil {
		return *cfg.OutDialect
	}
	if cfg.File != nil && cfg.File.output != nil {
		return *cfg.File.output
	}
	return in
}

func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// colors returns the palette to write to w with, or nil. An explicit
// -color wins over the config file, which wins over terminal detection.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.optSet("color") {
		return nil
	}
	if cfg.File != nil && cfg.File.Color != nil {
		if *cfg.File.Color {
			return encode.NewColors()
		}
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer, in format.Dialect) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeDialect(cfg.outDialect(in)),
		encode.EncodeWire(cfg.WireOut),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Depth int  `cli:"name=depth desc='levels to expand (default 2)'"`
	All   bool `cli:"name=all desc='expand every level'"`

	View *cli.Command
}

func (cfg *ViewConfig) depth() int {
	if cfg.View == nil {
		return cfg.Depth
	}
	for _, opt := range cfg.View.Opts {
		if opt.Name == "depth" && opt.Value != nil {
			return cfg.Depth
		}
	}
	if cfg.File != nil && cfg.File.Depth != nil {
		return *cfg.File.Depth
	}
	return 2
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type ExportConfig struct {
	*MainConfig

	Format string `cli:"name=f aliases=format desc='export format: json, js, python'"`
	Dir    string `cli:"name=w desc='write data.<ext> into this directory'"`

	Export *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MoveConfig struct {
	*MainConfig

	Diff bool `cli:"name=diff desc='show a line diff instead of the result'"`
	JSON bool `cli:"name=jsonpatch desc='print the move as a JSON Patch operation'"`

	Move *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Lines bool `cli:"name=lines desc='diff the formatted text line by line'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type SampleConfig struct {
	*MainConfig

	Sample *cli.Command
}
