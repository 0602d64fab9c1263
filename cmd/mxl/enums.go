package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/mxl"
	"github.com/signadot/mxl/simpletype"

	"github.com/scott-cotton/cli"
)

func enums(cfg *EnumsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Enums.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		for _, name := range mxl.Enumerations() {
			fmt.Fprintln(cc.Out, name)
		}
		return nil
	}
	for _, name := range args {
		s, ok := mxl.Enumeration(name)
		if !ok {
			return fmt.Errorf("%w: %q", mxl.ErrUnknownType, name)
		}
		fmt.Fprintf(cc.Out, "%s (%s):\n", name, s.Rule())
		for _, l := range s.Labels() {
			fmt.Fprintf(cc.Out, "\t- %q\n", l)
		}
	}
	return nil
}

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Types.Parse(cc, args); err != nil {
		return err
	}
	for _, name := range simpletype.Scalars() {
		d, _ := simpletype.Descriptor(name)
		fmt.Fprintf(cc.Out, "%s\t%s\n", name, d.Kind())
	}
	unions := simpletype.Unions()
	names := make([]string, 0, len(unions))
	for name := range unions {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(cc.Out, "%s\tunion of %s\n", name, strings.Join(unions[name], ", "))
	}
	return nil
}
