// Package commands implements the hosts-concat subcommands.
//
// Every command implements Runner: Init parses the command's own flags and
// loads the configuration, Run does the work and Name routes the command line
// to it. The commands are:
//
//   - build: concatenate the input directory into the output hosts file
//   - check: read and parse the inputs without writing anything
//   - config: print the effective configuration as TOML
//
// Options can be overridden on the command line with repeated -set flags:
//
//	hosts-concat -config hosts-concat.toml build -set hostIp=0.0.0.0 -set lineSpace=' '
package commands
