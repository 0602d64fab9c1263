package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/mxl"
	"github.com/signadot/mxl/complextype"
	"github.com/signadot/mxl/record"

	"github.com/scott-cotton/cli"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := decodeFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
	}
	return nil
}

func decodeFile(cfg *DecodeConfig, cc *cli.Context, file string) error {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	format, err := inputFormat(cfg.Format, file)
	if err != nil {
		return err
	}
	opts := []record.Option{
		record.AllowUnknown(cfg.AllowUnknown),
		record.StopOnFirstError(cfg.First),
	}
	v, err := decodeData(format, cfg.Element, data, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cc.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func decodeData(format, element string, data []byte, opts []record.Option) (any, error) {
	if element == "" {
		if format != "xml" {
			return nil, fmt.Errorf("%w: %s input needs -e element", cli.ErrUsage, format)
		}
		return mxl.DecodeElement(data, opts...)
	}
	v, ok := complextype.ForElement(element)
	if !ok {
		return nil, fmt.Errorf("%w: %q, want one of %s", mxl.ErrUnknownElement, element,
			strings.Join(complextype.Elements(), ", "))
	}
	var err error
	switch format {
	case "xml":
		err = mxl.DecodeXML(data, v, opts...)
	case "yaml":
		err = mxl.DecodeYAML(data, v, opts...)
	case "toml":
		err = mxl.DecodeTOML(data, v, opts...)
	}
	return v, err
}

func inputFormat(flag, file string) (string, error) {
	switch strings.ToLower(flag) {
	case "xml", "x":
		return "xml", nil
	case "yaml", "yml", "y":
		return "yaml", nil
	case "toml", "t":
		return "toml", nil
	case "":
	default:
		return "", fmt.Errorf("%w: unknown format %q", cli.ErrUsage, flag)
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	}
	return "xml", nil
}
