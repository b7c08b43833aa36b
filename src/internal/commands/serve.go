package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/hosts-concat/src/internal/api"
	"github.com/maksimkurb/hosts-concat/src/internal/config"
	"github.com/maksimkurb/hosts-concat/src/internal/hooks"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs:        flag.NewFlagSet("serve", flag.ExitOnError),
		overrides: config.Overrides{},
	}
	gc.fs.Var(overridesFlag(gc.overrides), "set", "Override a configuration option (key=value, repeatable)")
	gc.fs.StringVar(&gc.listen, "listen", "127.0.0.1:8080", "Address to serve the hosts file and API on")
	gc.fs.BoolVar(&gc.buildOnStart, "build", true, "Build the hosts file before serving")
	return gc
}

type ServeCommand struct {
	fs           *flag.FlagSet
	overrides    config.Overrides
	listen       string
	buildOnStart bool
	builder      *api.Builder
}

func (g *ServeCommand) Name() string {
	return g.fs.Name()
}

func (g *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath, g.overrides)
	if err != nil {
		return err
	}

	var transforms []hooks.BuildFunc
	if cfg.Header != "" {
		header, err := newHeaderTransform(cfg.Header, time.Now)
		if err != nil {
			return err
		}
		transforms = append(transforms, header)
	}
	g.builder = api.NewBuilder(cfg, transforms...)

	return nil
}

func (g *ServeCommand) Run() error {
	if g.buildOnStart {
		if info, err := g.builder.Build(); err != nil {
			log.Warnf("Initial build skipped: %v", err)
		} else if !info.Succeeded() {
			log.Warnf("Initial build did not save the output file")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(g.listen, g.builder)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
