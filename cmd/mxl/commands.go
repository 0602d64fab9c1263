package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Main *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Format       string `cli:"name=f aliases=format desc='input format: xml, yaml or toml (default from file extension, else xml)'"`
	Element      string `cli:"name=e aliases=element desc='element to decode yaml and toml input as, e.g. attributes'"`
	AllowUnknown bool   `cli:"name=allow-unknown desc='ignore fields the element does not define'"`
	First        bool   `cli:"name=first desc='stop at the first bad field'"`
	Decode       *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Validate *cli.Command
}

type EnumsConfig struct {
	*MainConfig
	Enums *cli.Command
}

type TypesConfig struct {
	*MainConfig
	Types *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "mxl").
		WithSynopsis("mxl command [opts]").
		WithDescription("mxl decodes and validates MusicXML values.").
		WithRun(func(cc *cli.Context, args []string) error {
			return mxlMain(cfg, cc, args)
		}).
		WithSubs(
			DecodeCommand(cfg),
			ValidateCommand(cfg),
			EnumsCommand(cfg),
			TypesCommand(cfg))
}

func mxlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	return nil
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d").
		WithSynopsis("decode [-f format] [-e element] [files]").
		WithDescription("decode elements and print them as JSON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v").
		WithSynopsis("validate type value [value...]").
		WithDescription("check values against a simple type such as midi-128 or yes-no").
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

func EnumsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EnumsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Enums, "enums").
		WithSynopsis("enums [name...]").
		WithDescription("list enumerations, or the labels of the named ones").
		WithRun(func(cc *cli.Context, args []string) error {
			return enums(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithSynopsis("types").
		WithDescription("list scalar and union simple types").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}
