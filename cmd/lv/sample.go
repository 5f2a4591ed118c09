package main

import (
	"fmt"

	"github.com/signadot/litview"

	"github.com/scott-cotton/cli"
)

func sample(cfg *SampleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sample.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: sample takes no arguments", cli.ErrUsage)
	}
	d := cfg.inDialect("")
	doc := litview.New(d)
	if err := doc.LoadSample(d); err != nil {
		return err
	}
	text, err := doc.FormatAs(cfg.outDialect(d))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, text)
	return err
}
