package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/hosts-concat/src/internal/concat"
	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/hooks"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs:        flag.NewFlagSet("check", flag.ExitOnError),
		overrides: config.Overrides{},
	}
	gc.fs.Var(overridesFlag(gc.overrides), "set", "Override a configuration option (key=value, repeatable)")
	return gc
}

type CheckCommand struct {
	fs        *flag.FlagSet
	overrides config.Overrides
	cfg       *config.Config
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
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

func (g *CheckCommand) Run() error {
	problems := 0
	h := hooks.New().OnError(func(err error) {
		problems++
		log.Errorf("%v", err)
	})

	report := concat.Check(g.cfg, h)
	logReport(report)
	for _, name := range report.InvalidNames {
		log.Warnf("Invalid domain name: %s", name)
	}

	if problems > 0 {
		return fmt.Errorf("check found %d problem(s)", problems)
	}
	log.Infof("Check passed")
	return nil
}
