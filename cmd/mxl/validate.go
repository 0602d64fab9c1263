package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/signadot/mxl"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: validate requires a type and at least one value", cli.ErrUsage)
	}
	typ := args[0]
	bad := 0
	for _, raw := range args[1:] {
		err := mxl.Validate(typ, raw)
		if errors.Is(err, mxl.ErrUnknownType) {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s %s\n", color.RedString("invalid"), err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s %q\n", color.GreenString("ok"), raw)
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
