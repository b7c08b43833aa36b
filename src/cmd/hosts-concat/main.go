package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/hosts-concat/src/internal/api"
	"github.com/maksimkurb/hosts-concat/src/internal/commands"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to TOML configuration file (built-in defaults when empty)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Hosts file concatenator\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [-set key=value ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  build                   Concatenate input lists into the output hosts file\n")
		fmt.Fprintf(os.Stderr, "  check                   Read and parse input lists without writing the output\n")
		fmt.Fprintf(os.Stderr, "  config                  Print the effective configuration as TOML\n")
		fmt.Fprintf(os.Stderr, "  serve                   Serve the hosts file and a build API over HTTP\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	api.Version, api.Commit, api.Date = version, commit, date

	cmds := []commands.Runner{
		commands.CreateBuildCommand(),
		commands.CreateCheckCommand(),
		commands.CreateConfigCommand(),
		commands.CreateServeCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
