// Package config holds the options of a hosts-concat run.
//
// A Config starts from Default and is then adjusted key by key, either from
// a TOML file (LoadConfig) or from an Overrides map (New, ApplyOverrides).
// Keys that are not mentioned keep their default value. Option names are the
// same in both places:
//
//	scanFrom      = "./hosts"            # directory with *.txt block-lists
//	saveTo        = "./build/hosts.txt"  # output hosts file
//	allowHosts    = "./allow.txt"        # hosts never written to the output
//	hostIp        = "127.0.0.1"          # address prefixed to every line
//	lineSpace     = "\t"                 # separator between address and host
//	lineBreak     = "\n"                 # line terminator
//	scanPattern   = "*.txt"              # input file name pattern
//	concurrency   = 0                    # parallel reads, 0 = unbounded
//	skipUnchanged = false                # keep the output file if content is identical
//	header        = "# {{date}}"         # CLI header template, "" disables it
//
// # Example Usage
//
//	cfg, err := config.New(config.Overrides{"saveTo": "/etc/hosts.block"})
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// Relative paths are resolved against the directory of the configuration
// file when one was loaded, and against the working directory otherwise.
// A Config is read-only once a run has started.
package config
