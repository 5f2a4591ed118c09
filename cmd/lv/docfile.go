package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/litview"

	"github.com/scott-cotton/cli"
)

// readInput reads path, or stdin when path is "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*litview.Document, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return loadDoc(cfg, path, d)
}

// loadDoc parses d, which was read from path. Parse failures are
// described with their line and column.
func loadDoc(cfg *MainConfig, path string, d []byte) (*litview.Document, error) {
	doc := litview.New(cfg.inDialect(path))
	if err := doc.Load(d); err != nil {
		return nil, fmt.Errorf("%s: %s", path, litview.DescribeError(err, d))
	}
	return doc, nil
}

// inputs returns the files named by args, stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
