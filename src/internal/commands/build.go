package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/maksimkurb/hosts-concat/src/internal/concat"
	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/hooks"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

func CreateBuildCommand() *BuildCommand {
	gc := &BuildCommand{
		fs:        flag.NewFlagSet("build", flag.ExitOnError),
		overrides: config.Overrides{},
	}
	gc.fs.Var(overridesFlag(gc.overrides), "set", "Override a configuration option (key=value, repeatable)")
	return gc
}

type BuildCommand struct {
	fs        *flag.FlagSet
	overrides config.Overrides
	cfg       *config.Config
	hooks     *hooks.Hooks
}

func (g *BuildCommand) Name() string {
	return g.fs.Name()
}

func (g *BuildCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath, g.overrides); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	g.hooks = hooks.New().
		OnStart(func(cfg *config.Config) {
			log.Infof("Scanning %s for %s files", cfg.GetAbsScanDir(), cfg.ScanPattern)
		}).
		OnError(func(err error) {
			log.Warnf("%v", err)
		}).
		OnFinish(func(cfg *config.Config) {
			log.Infof("Hosts file is ready: %s", cfg.GetAbsOutputPath())
		})

	if g.cfg.Header != "" {
		header, err := newHeaderTransform(g.cfg.Header, time.Now)
		if err != nil {
			return err
		}
		g.hooks.OnBuild(header)
	}

	return nil
}

func (g *BuildCommand) Run() error {
	report := concat.Run(g.cfg, g.hooks)
	logReport(report)

	if !report.Saved && !report.Unchanged {
		return fmt.Errorf("output file was not saved")
	}
	if report.Unchanged {
		log.Infof("Output file content is unchanged, write skipped")
	}
	return nil
}

func logReport(report concat.Report) {
	log.Infof("Files: %d (%d failed), %d bytes read", report.Files, report.FailedFiles, report.Size)
	log.Infof("Hosts: %d unique, %d allowed, %d written", report.Entries, report.Excluded, report.Written)
	if len(report.InvalidNames) > 0 {
		log.Warnf("%d names are not valid domain names", len(report.InvalidNames))
		for _, name := range report.InvalidNames {
			log.Debugf("  %s", name)
		}
	}
}
