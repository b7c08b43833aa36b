package commands

import (
	"flag"
	"io"
	"os"

	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

func CreateConfigCommand() *ConfigCommand {
	gc := &ConfigCommand{
		fs:        flag.NewFlagSet("config", flag.ExitOnError),
		overrides: config.Overrides{},
		out:       os.Stdout,
	}
	gc.fs.Var(overridesFlag(gc.overrides), "set", "Override a configuration option (key=value, repeatable)")
	return gc
}

type ConfigCommand struct {
	fs        *flag.FlagSet
	overrides config.Overrides
	cfg       *config.Config
	out       io.Writer
}

func (g *ConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ConfigCommand) Init(args []string, ctx *AppContext) error {
	// stdout carries the TOML document only
	log.SetForceStdErr(true)

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath, g.overrides); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ConfigCommand) Run() error {
	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(g.out)
	return err
}
